package grpc_server

import (
	"time"

	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"
	"couplepath/services/progress-service/pkg/progresspb"
)

func toPBEnrollment(e *domain.Enrollment) *progresspb.Enrollment {
	out := &progresspb.Enrollment{
		Id:              e.ID.String(),
		SubjectId:       e.SubjectID.String(),
		ProgramId:       e.ProgramID,
		StartDate:       domain.DayKey(e.StartDate),
		CurrentPosition: int32(e.CurrentPosition),
		Status:          string(e.Status),
	}
	if e.CompletedAt != nil {
		out.CompletedAt = e.CompletedAt.Format(time.RFC3339)
	}
	return out
}

func toPBUnit(u *domain.Unit) *progresspb.Unit {
	return &progresspb.Unit{
		ProgramId:      u.ProgramID,
		SequenceNumber: int32(u.SequenceNumber),
		GroupId:        u.GroupID,
		Title:          u.Title,
		Payload:        []byte(u.Payload),
	}
}

func toPBUnitStates(states []domain.UnitState) []*progresspb.UnitState {
	out := make([]*progresspb.UnitState, 0, len(states))
	for _, s := range states {
		out = append(out, &progresspb.UnitState{
			SequenceNumber: int32(s.SequenceNumber),
			GroupId:        s.GroupID,
			Title:          s.Title,
			Status:         string(s.Status),
		})
	}
	return out
}

func toPBRecord(r *domain.CompletionRecord) *progresspb.CompletionRecord {
	return &progresspb.CompletionRecord{
		SequenceNumber:     int32(r.SequenceNumber),
		CompletedAt:        r.CompletedAt.Format(time.RFC3339),
		ActionAcknowledged: r.ActionAcknowledged,
		Note:               r.Note,
	}
}

func toPBProgress(p *usecase.ProgramProgress) *progresspb.GetProgressResponse {
	out := &progresspb.GetProgressResponse{
		Enrollment:     toPBEnrollment(p.Enrollment),
		CompletedUnits: int32(p.CompletedUnits),
		TotalUnits:     int32(p.TotalUnits),
		Percent:        int32(p.Percent),
		Groups:         make([]*progresspb.GroupProgress, 0, len(p.Groups)),
	}
	for _, g := range p.Groups {
		out.Groups = append(out.Groups, &progresspb.GroupProgress{
			GroupId:        g.GroupID,
			ParentId:       g.ParentID,
			Kind:           string(g.Kind),
			Title:          g.Title,
			CompletedUnits: int32(g.CompletedUnits),
			TotalUnits:     int32(g.TotalUnits),
			Complete:       g.Complete,
		})
	}
	return out
}

func toPBResponse(r *domain.PairedResponse) *progresspb.PairedResponse {
	if r == nil {
		return nil
	}
	return &progresspb.PairedResponse{
		ResponderId:  r.ResponderID.String(),
		ResponseText: r.ResponseText,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func toPBReveal(v *usecase.RevealView) *progresspb.RevealResponse {
	return &progresspb.RevealResponse{
		Day:      v.Day,
		Question: toPBUnit(v.Question),
		State:    string(v.State),
		Mine:     toPBResponse(v.Mine),
		Partner:  toPBResponse(v.Partner),
	}
}

func toPBCouple(c *domain.Couple) *progresspb.CoupleResponse {
	return &progresspb.CoupleResponse{Couple: &progresspb.Couple{
		Id:         c.ID.String(),
		PartnerAId: c.PartnerAID.String(),
		PartnerBId: c.PartnerBID.String(),
	}}
}
