package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kinoops/backoffice/internal/domain"
	"github.com/kinoops/backoffice/internal/repository"
	redisrepo "github.com/kinoops/backoffice/internal/repository/redis"
	"github.com/kinoops/backoffice/internal/service"
	"github.com/kinoops/backoffice/internal/service/invoices"
	"github.com/kinoops/backoffice/internal/service/orders"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const dateLayout = "2006-01-02"

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/orders", handleListOrders(svcs))

	r.GET("/invoices", handleListInvoicePeriods(svcs))
	r.POST("/invoices/corrections", handleIssueCorrection(svcs, idem))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List orders for a date range
// @Param    from          query  string  false  "start date (2006-01-02), default 6 days ago"
// @Param    to            query  string  false  "end date (2006-01-02), default today"
// @Param    site          query  string  false  "cinema site"
// @Param    email_status  query  string  false  "Versendet | Ausstehend | alle"
// @Param    status        query  string  false  "BOOKED | CANCELLED | REFUNDED | PENDING | alle"
// @Param    film          query  string  false  "film name or alle"
// @Param    version       query  string  false  "film version or alle"
// @Param    page          query  int     false  "1-based page"
// @Param    page_size     query  int     false  "page size"
// @Success  200  {object}  ListOrdersResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /orders [get]
func handleListOrders(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		to := time.Now().UTC().Truncate(24 * time.Hour)
		from := to.AddDate(0, 0, -6)

		var err error
		if s := c.Query("to"); s != "" {
			if to, err = time.Parse(dateLayout, s); err != nil {
				badRequest(c, "invalid to (2006-01-02)")
				return
			}
		}
		if s := c.Query("from"); s != "" {
			if from, err = time.Parse(dateLayout, s); err != nil {
				badRequest(c, "invalid from (2006-01-02)")
				return
			}
		}

		filter := domain.TransactionFilter{
			Email:   emailFilter(c.Query("email_status")),
			Status:  statusFilter(c.Query("status")),
			Site:    stringFilter(c.Query("site")),
			Film:    stringFilter(c.Query("film")),
			Version: stringFilter(c.Query("version")),
		}

		page := parseIntDefault(c.Query("page"), 1)
		pageSize := parseIntDefault(c.Query("page_size"), 0)

		res, err := svcs.Orders.List(
			c.Request.Context(),
			from,
			to,
			c.Query("site"),
			filter,
			page,
			pageSize,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		resp := ListOrdersResponse{
			Orders:     make([]OrderResponse, 0, len(res.Orders)),
			Page:       res.Page,
			TotalPages: res.TotalPages,
		}
		for _, v := range res.Orders {
			resp.Orders = append(resp.Orders, toOrderResponse(v))
		}

		// ETag + Cache-Control 15s (short, the list changes often)
		writeJSONWithCache(c, http.StatusOK, resp, "public, max-age=15", true)
	}
}

// @Summary  List invoice periods of a year
// @Param    year       query  int  false  "settlement year, default current"
// @Param    page       query  int  false  "1-based page"
// @Param    page_size  query  int  false  "page size"
// @Success  200  {object}  ListInvoicesResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /invoices [get]
func handleListInvoicePeriods(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		year := parseIntDefault(c.Query("year"), time.Now().UTC().Year())
		page := parseIntDefault(c.Query("page"), 1)
		pageSize := parseIntDefault(c.Query("page_size"), 0)

		res, err := svcs.Invoices.ListPeriods(c.Request.Context(), year, page, pageSize)
		if err != nil {
			respondErr(c, err)
			return
		}

		gross, customerShare, payout, err := svcs.Invoices.YearTotals(c.Request.Context(), year)
		if err != nil {
			respondErr(c, err)
			return
		}

		resp := ListInvoicesResponse{
			Year:       year,
			Groups:     make([]PeriodGroupResponse, 0, len(res.Groups)),
			Totals:     YearTotalsResponse{Gross: gross, CustomerShare: customerShare, Payout: payout},
			Page:       res.Page,
			TotalPages: res.TotalPages,
		}
		for _, g := range res.Groups {
			resp.Groups = append(resp.Groups, toPeriodGroupResponse(g))
		}

		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, resp, "public, max-age=60", true)
	}
}

// @Summary  Issue an invoice correction (idempotent)
// @Param    req body  IssueCorrectionRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} InvoiceResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "version conflict / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /invoices/corrections [post]
func handleIssueCorrection(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IssueCorrectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemCorrection(req.Year, req.Month, req.Period, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		inv, err := svcs.Invoices.IssueCorrection(
			c.Request.Context(),
			req.Year,
			req.Month,
			req.Period,
			decimal.NewFromFloat(req.Gross),
			decimal.NewFromFloat(req.CustomerShare),
			decimal.NewFromFloat(req.Payout),
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if errors.Is(err, invoices.ErrRateLimited) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		resp := toInvoiceResponse(*inv)

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// --- Helpers ---

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// orders service
	case errors.Is(err, orders.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	// invoices service
	case errors.Is(err, invoices.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid settlement period"})
	case errors.Is(err, invoices.ErrVersionConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "invoice version conflict"})
	// repositories
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
