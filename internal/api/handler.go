package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/versified/bondsapi/internal/domain/dto"
	"github.com/versified/bondsapi/internal/service"
)

// allowedOrderFields are the sort keys the SIX list query accepts from
// callers; anything else silently falls back to MaturityDate.
var allowedOrderFields = map[string]struct{}{
	"MaturityDate":   {},
	"ShortName":      {},
	"IssuerNameFull": {},
	"YieldToWorst":   {},
	"CouponRate":     {},
}

// Handler provides HTTP handlers for the Bonds API endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.BondService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.BondService) *Handler {
	return &Handler{svc: svc}
}

// SearchBonds handles GET /api/bonds/search requests.
//
// SearchBonds godoc
// @Summary      Search bonds
// @Description  Returns a page of bonds filtered by maturity bucket, currency, and country, enriched with government spreads
// @Tags         bonds
// @Produce      json
// @Param        maturity_bucket  query     string  false  "Maturity bucket: lt1, 1-2, 2-3, 3-5, 5-10, 10+"  default(2-3)
// @Param        currency         query     string  false  "Trading currency"  default(CHF)
// @Param        country          query     string  false  "Issuer country"    default(CH)
// @Param        page             query     int     false  "Page number (1-based)"  default(1)
// @Param        page_size        query     int     false  "Page size (1-200)"      default(50)
// @Param        order_by         query     string  false  "Sort field"             default(MaturityDate)
// @Success      200  {object}  dto.SearchResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream Failure"
// @Router       /api/bonds/search [get]
func (h *Handler) SearchBonds(c *gin.Context) {
	q := service.SearchQuery{
		MaturityBucket: c.DefaultQuery("maturity_bucket", "2-3"),
		Currency:       c.DefaultQuery("currency", "CHF"),
		Country:        c.DefaultQuery("country", "CH"),
		OrderBy:        c.DefaultQuery("order_by", "MaturityDate"),
	}

	if n := len(q.Currency); n < 1 || n > 6 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("currency must be 1-6 characters", nil))
		return
	}
	if n := len(q.Country); n < 1 || n > 6 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("country must be 1-6 characters", nil))
		return
	}

	var err error
	q.Page, err = intQuery(c, "page", 1)
	if err != nil || q.Page < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("page must be a positive integer", err))
		return
	}
	q.PageSize, err = intQuery(c, "page_size", 50)
	if err != nil || q.PageSize < 1 || q.PageSize > 200 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("page_size must be between 1 and 200", err))
		return
	}

	if _, ok := allowedOrderFields[q.OrderBy]; !ok {
		q.OrderBy = "MaturityDate"
	}

	resp, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(upstreamStatus(err), dto.NewErrorResponse("bond search failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BondDetails handles GET /api/bonds/{valor_id} requests.
//
// BondDetails godoc
// @Summary      Get bond details
// @Description  Returns the merged overview, details, market, and liquidity payloads for one bond
// @Tags         bonds
// @Produce      json
// @Param        valor_id  path      string  true  "Valor ID"
// @Success      200  {object}  dto.DetailsResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse    "Not Found"
// @Failure      502  {object}  dto.ErrorResponse    "Upstream Failure"
// @Router       /api/bonds/{valor_id} [get]
func (h *Handler) BondDetails(c *gin.Context) {
	valorID := c.Param("valor_id")

	resp, err := h.svc.Details(c.Request.Context(), valorID)
	if err != nil {
		c.JSON(upstreamStatus(err), dto.NewErrorResponse("bond details failed", err))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Bond not found", nil))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Curve handles GET /api/snb/curve requests.
//
// Curve godoc
// @Summary      Get the SNB reference curve
// @Description  Returns the latest government bond yield curve snapshot
// @Tags         curve
// @Produce      json
// @Success      200  {object}  dto.CurveResponse  "Success"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /api/snb/curve [get]
func (h *Handler) Curve(c *gin.Context) {
	resp, err := h.svc.Curve(c.Request.Context())
	if err != nil {
		c.JSON(upstreamStatus(err), dto.NewErrorResponse("curve fetch failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BondVolumes handles GET /api/bonds/volumes requests.
//
// BondVolumes godoc
// @Summary      Get bond volumes
// @Description  Returns aggregated trading volumes for a comma-separated list of Valor IDs
// @Tags         bonds
// @Produce      json
// @Param        ids  query     string  false  "Comma-separated Valor IDs"
// @Success      200  {object}  dto.VolumesResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/bonds/volumes [get]
func (h *Handler) BondVolumes(c *gin.Context) {
	var ids []string
	for _, part := range strings.Split(c.Query("ids"), ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	resp, err := h.svc.Volumes(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("volume aggregation failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// upstreamStatus maps a service error to 502 when a data provider answered
// with a non-success status, and 500 for everything else.
func upstreamStatus(err error) int {
	if service.IsUpstream(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
