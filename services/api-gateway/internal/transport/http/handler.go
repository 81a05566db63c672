package handlers

import (
	"errors"
	"net/http"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dayLayout = "2006-01-02"

var errNoCouple = errors.New("you are not linked to a partner")

// Handler serves the couplepath HTTP API on top of the progress service.
type Handler struct {
	client progresspb.ProgressServiceClient
	loc    *time.Location
	now    func() time.Time
	log    *logger.Logger

	// allowDateOverride honours ?date=; only for local testing.
	allowDateOverride bool
}

func NewHandler(client progresspb.ProgressServiceClient, loc *time.Location, allowDateOverride bool, log *logger.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		client:            client,
		loc:               loc,
		now:               time.Now,
		log:               log,
		allowDateOverride: allowDateOverride,
	}
}

// clock returns the current instant in the configured timezone. When date
// overrides are enabled, ?date= moves it to that calendar day while keeping the
// wall clock; otherwise the parameter is ignored.
func (h *Handler) clock(c *gin.Context) (time.Time, bool) {
	now := h.now().In(h.loc)
	raw := c.Query("date")
	if raw == "" || !h.allowDateOverride {
		return now, true
	}
	d, err := time.ParseInLocation(dayLayout, raw, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), h.loc), true
}

// subject is the caller, or the caller's couple with ?scope=couple.
func (h *Handler) subject(c *gin.Context) (string, bool) {
	userID := c.GetString("userId")
	switch c.Query("scope") {
	case "", "me":
		return userID, true
	case "couple":
		couple, ok := h.couple(c)
		if !ok {
			return "", false
		}
		return couple.GetId(), true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be me or couple"})
		return "", false
	}
}

func (h *Handler) couple(c *gin.Context) (*progresspb.Couple, bool) {
	res, err := h.client.GetCouple(c, &progresspb.GetCoupleRequest{MemberId: c.GetString("userId")})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": errNoCouple.Error()})
			return nil, false
		}
		h.writeError(c, err)
		return nil, false
	}
	return res.GetCouple(), true
}

func (h *Handler) GetStreak(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	now, ok := h.clock(c)
	if !ok {
		return
	}

	res, err := h.client.GetStreak(c, &progresspb.GetStreakRequest{SubjectId: subject, AsOf: now.Format(time.RFC3339)})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current":         res.GetCurrent(),
		"longest":         res.GetLongest(),
		"alive":           res.GetAlive(),
		"last_completion": res.GetLastCompletion(),
	})
}
