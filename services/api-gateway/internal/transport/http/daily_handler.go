package handlers

import (
	"net/http"
	"time"

	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type answerReq struct {
	Text string `json:"text" binding:"required"`
}

// DailyQuestion shows today's question. Linked callers also get the reveal
// state; the partner's answer is included only once both have answered.
func (h *Handler) DailyQuestion(c *gin.Context) {
	now, ok := h.clock(c)
	if !ok {
		return
	}
	day := now.Format(dayLayout)
	userID := c.GetString("userId")

	couple, err := h.client.GetCouple(c, &progresspb.GetCoupleRequest{MemberId: userID})
	if status.Code(err) == codes.NotFound {
		res, err := h.client.GetDailyQuestion(c, &progresspb.GetDailyQuestionRequest{Day: day})
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"day": day, "question": unitView(res.GetUnit())})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.client.GetRevealState(c, &progresspb.GetRevealStateRequest{
		PairId:      couple.GetCouple().GetId(),
		ResponderId: userID,
		Day:         day,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, revealView(res))
}

func (h *Handler) Answer(c *gin.Context) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now, ok := h.clock(c)
	if !ok {
		return
	}
	couple, ok := h.couple(c)
	if !ok {
		return
	}

	res, err := h.client.SubmitResponse(c, &progresspb.SubmitResponseRequest{
		PairId:      couple.GetId(),
		ResponderId: c.GetString("userId"),
		Day:         now.Format(dayLayout),
		Text:        req.Text,
		At:          now.Format(time.RFC3339),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, revealView(res))
}

func (h *Handler) Nudge(c *gin.Context) {
	now, ok := h.clock(c)
	if !ok {
		return
	}
	couple, ok := h.couple(c)
	if !ok {
		return
	}

	res, err := h.client.Nudge(c, &progresspb.NudgeRequest{
		PairId:      couple.GetId(),
		RequesterId: c.GetString("userId"),
		Day:         now.Format(dayLayout),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": res.GetSent()})
}
