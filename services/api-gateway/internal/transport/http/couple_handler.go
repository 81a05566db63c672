package handlers

import (
	"net/http"

	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/gin-gonic/gin"
)

type linkReq struct {
	PartnerID string `json:"partner_id" binding:"required"`
}

func (h *Handler) LinkCouple(c *gin.Context) {
	var req linkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.client.LinkCouple(c, &progresspb.LinkCoupleRequest{
		MemberA: c.GetString("userId"),
		MemberB: req.PartnerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupleView(res.GetCouple()))
}

func (h *Handler) GetCouple(c *gin.Context) {
	couple, ok := h.couple(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, coupleView(couple))
}
