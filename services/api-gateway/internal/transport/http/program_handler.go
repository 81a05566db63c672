package handlers

import (
	"net/http"
	"strconv"
	"time"

	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/gin-gonic/gin"
)

type completeReq struct {
	ActionAcknowledged *bool   `json:"action_acknowledged"`
	Note               *string `json:"note"`
}

func (h *Handler) Enroll(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	now, ok := h.clock(c)
	if !ok {
		return
	}

	res, err := h.client.Enroll(c, &progresspb.EnrollRequest{
		SubjectId: subject,
		ProgramId: c.Param("id"),
		StartDate: now.Format(dayLayout),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollmentView(res.GetEnrollment()))
}

func (h *Handler) Abandon(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	res, err := h.client.Abandon(c, &progresspb.AbandonRequest{SubjectId: subject, ProgramId: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollmentView(res.GetEnrollment()))
}

func (h *Handler) ListUnits(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	res, err := h.client.GetUnitStates(c, &progresspb.GetUnitStatesRequest{SubjectId: subject, ProgramId: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"units": unitStatesView(res.GetUnits())})
}

func (h *Handler) CompleteUnit(c *gin.Context) {
	seq, err := strconv.ParseInt(c.Param("seq"), 10, 32)
	if err != nil || seq < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sequence number must be a positive integer"})
		return
	}

	var req completeReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	subject, ok := h.subject(c)
	if !ok {
		return
	}
	now, ok := h.clock(c)
	if !ok {
		return
	}

	res, err := h.client.CompleteUnit(c, &progresspb.CompleteUnitRequest{
		SubjectId:          subject,
		ProgramId:          c.Param("id"),
		SequenceNumber:     int32(seq),
		CompletedAt:        now.Format(time.RFC3339),
		ActionAcknowledged: req.ActionAcknowledged,
		Note:               req.Note,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, completionView(res))
}

func (h *Handler) GetProgress(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	res, err := h.client.GetProgress(c, &progresspb.GetProgressRequest{SubjectId: subject, ProgramId: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progressView(res))
}

// Today returns the unit at the subject's current position.
func (h *Handler) Today(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	res, err := h.client.GetCurrentUnit(c, &progresspb.GetCurrentUnitRequest{SubjectId: subject, ProgramId: c.Param("id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, unitView(res.GetUnit()))
}

func (h *Handler) GroupCompletion(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	res, err := h.client.GetPhaseCompletion(c, &progresspb.GetPhaseCompletionRequest{
		ProgramId: c.Param("id"),
		GroupId:   c.Param("groupId"),
		SubjectId: subject,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group_id": c.Param("groupId"), "complete": res.GetComplete()})
}
