package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/etnz/eggworth"
)

// yearPrice is one row of the yearly egg price response.
type yearPrice struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

// PriceHandler serves the egg price endpoints.
type PriceHandler struct {
	feed *eggworth.Feed
}

func NewPriceHandler(feed *eggworth.Feed) *PriceHandler {
	return &PriceHandler{feed: feed}
}

// GetHistorical returns the yearly per-egg price series. Upstream trouble
// is recovered with the fallback table and reported in the error field,
// never as a failing status.
func (h *PriceHandler) GetHistorical(c *gin.Context) {
	samples, advisory := h.feed.Historical()
	if advisory != "" {
		logrus.WithField("advisory", advisory).Warn("price feed degraded")
	}

	data := make([]yearPrice, 0, len(samples))
	for _, s := range samples {
		data = append(data, yearPrice{Year: s.Period.Year(), Price: s.UnitPrice.Float64()})
	}

	resp := gin.H{"data": data}
	if advisory != "" {
		resp["error"] = advisory
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrent returns the most recent per-egg price, defaulting rather than
// failing.
func (h *PriceHandler) GetCurrent(c *gin.Context) {
	price, asOf, advisory := h.feed.Current()
	if advisory != "" {
		logrus.WithField("advisory", advisory).Warn("price feed degraded")
	}

	resp := gin.H{"currentPrice": price.Float64()}
	if !asOf.IsZero() {
		resp["asOf"] = asOf.Label()
	}
	if advisory != "" {
		resp["error"] = advisory
	}
	c.JSON(http.StatusOK, resp)
}

// PostRaw proxies the raw upstream observations untransformed, in the
// unit the feed sent them in. This is the one endpoint that surfaces
// upstream failure, so clients can apply their own fallback.
func (h *PriceHandler) PostRaw(c *gin.Context) {
	records, err := h.feed.Raw()
	if err != nil {
		logrus.WithError(err).Warn("raw price passthrough failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// RosterHandler serves the billionaires roster.
type RosterHandler struct {
	roster *eggworth.Roster
}

func NewRosterHandler(roster *eggworth.Roster) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// List returns one pagination window of the roster. Parameters parse
// leniently: anything that is not a non-negative integer counts as
// absent, and the echoed values are the effective ones.
func (h *RosterHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	page, total := h.roster.List(limit, offset)
	c.JSON(http.StatusOK, gin.H{
		"data":   page,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Head reports the roster size without a body.
func (h *RosterHandler) Head(c *gin.Context) {
	c.Header("X-Total-Count", strconv.Itoa(h.roster.Len()))
	c.Status(http.StatusOK)
}
