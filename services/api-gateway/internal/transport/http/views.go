package handlers

import (
	"encoding/json"

	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/gin-gonic/gin"
)

// Responses are rendered field by field so zero values (position 0, false
// flags) stay in the body and unit payloads go out as JSON, not base64.

func enrollmentView(e *progresspb.Enrollment) gin.H {
	if e == nil {
		return nil
	}
	out := gin.H{
		"id":               e.GetId(),
		"subject_id":       e.GetSubjectId(),
		"program_id":       e.GetProgramId(),
		"start_date":       e.GetStartDate(),
		"current_position": e.GetCurrentPosition(),
		"status":           e.GetStatus(),
	}
	if e.GetCompletedAt() != "" {
		out["completed_at"] = e.GetCompletedAt()
	}
	return out
}

func unitView(u *progresspb.Unit) gin.H {
	if u == nil {
		return nil
	}
	out := gin.H{
		"program_id":      u.GetProgramId(),
		"sequence_number": u.GetSequenceNumber(),
		"group_id":        u.GetGroupId(),
		"title":           u.GetTitle(),
	}
	if len(u.GetPayload()) > 0 {
		out["payload"] = json.RawMessage(u.GetPayload())
	}
	return out
}

func unitStatesView(units []*progresspb.UnitState) []gin.H {
	out := make([]gin.H, 0, len(units))
	for _, u := range units {
		out = append(out, gin.H{
			"sequence_number": u.GetSequenceNumber(),
			"group_id":        u.GetGroupId(),
			"title":           u.GetTitle(),
			"status":          u.GetStatus(),
		})
	}
	return out
}

func completionView(res *progresspb.CompleteUnitResponse) gin.H {
	r := res.GetRecord()
	milestones := res.GetMilestones()
	if milestones == nil {
		milestones = []string{}
	}
	return gin.H{
		"enrollment": enrollmentView(res.GetEnrollment()),
		"record": gin.H{
			"sequence_number":     r.GetSequenceNumber(),
			"completed_at":        r.GetCompletedAt(),
			"action_acknowledged": r.GetActionAcknowledged(),
			"note":                r.GetNote(),
		},
		"milestones": milestones,
	}
}

func progressView(res *progresspb.GetProgressResponse) gin.H {
	groups := make([]gin.H, 0, len(res.GetGroups()))
	for _, g := range res.GetGroups() {
		groups = append(groups, gin.H{
			"group_id":        g.GetGroupId(),
			"parent_id":       g.GetParentId(),
			"kind":            g.GetKind(),
			"title":           g.GetTitle(),
			"completed_units": g.GetCompletedUnits(),
			"total_units":     g.GetTotalUnits(),
			"complete":        g.GetComplete(),
		})
	}
	return gin.H{
		"enrollment":      enrollmentView(res.GetEnrollment()),
		"completed_units": res.GetCompletedUnits(),
		"total_units":     res.GetTotalUnits(),
		"percent":         res.GetPercent(),
		"groups":          groups,
	}
}

func responseView(r *progresspb.PairedResponse) gin.H {
	if r == nil {
		return nil
	}
	return gin.H{
		"responder_id":  r.GetResponderId(),
		"response_text": r.GetResponseText(),
		"created_at":    r.GetCreatedAt(),
	}
}

func revealView(res *progresspb.RevealResponse) gin.H {
	out := gin.H{
		"day":      res.GetDay(),
		"question": unitView(res.GetQuestion()),
		"state":    res.GetState(),
	}
	if mine := responseView(res.GetMine()); mine != nil {
		out["mine"] = mine
	}
	if partner := responseView(res.GetPartner()); partner != nil {
		out["partner"] = partner
	}
	return out
}

func coupleView(c *progresspb.Couple) gin.H {
	return gin.H{
		"id":           c.GetId(),
		"partner_a_id": c.GetPartnerAId(),
		"partner_b_id": c.GetPartnerBId(),
	}
}
