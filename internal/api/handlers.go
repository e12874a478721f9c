package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"pokedex/internal/engine"
	"pokedex/internal/export"
	"pokedex/internal/models"
)

type Handler struct {
	engine atomic.Pointer[engine.Engine]
}

// NewHandler accepts a nil engine; every route answers 503 until SetEngine.
func NewHandler(e *engine.Engine) *Handler {
	h := &Handler{}
	if e != nil {
		h.engine.Store(e)
	}
	return h
}

func (h *Handler) SetEngine(e *engine.Engine) {
	h.engine.Store(e)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", h.requireEngine)
	api.GET("/pokemon", h.GetByCount)
	api.GET("/pokemon/type/:type", h.GetFirstOfType)
	api.GET("/pokemon/total/:total", h.GetByTotal)
	api.GET("/pokemon/stats", h.GetByMinStats)
	api.GET("/pokemon/legendary", h.GetLegendary)
	api.GET("/team", h.GetTeam)
	api.GET("/summary", h.GetSummary)
}

func (h *Handler) requireEngine(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.engine.Load() == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "pokedex is still loading"})
		}
		return next(c)
	}
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func badNumber(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name + ": please enter a valid number"})
}

func (h *Handler) GetByCount(c echo.Context) error {
	n, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil {
		return badNumber(c, "count")
	}
	res, err := h.engine.Load().ByCount(n)
	return h.respond(c, res, err, "")
}

func (h *Handler) GetFirstOfType(c echo.Context) error {
	t := engine.NormalizeType(c.Param("type"))
	res, err := h.engine.Load().FirstOfType(t)
	return h.respond(c, res, err, "no pokemon of this type")
}

func (h *Handler) GetByTotal(c echo.Context) error {
	res, err := h.engine.Load().ByTotalText(c.Param("total"))
	return h.respond(c, res, err, "no pokemon with this total base stat")
}

func (h *Handler) GetByMinStats(c echo.Context) error {
	var mins [3]int
	for i, name := range []string{"spatk", "spdef", "speed"} {
		n, err := strconv.Atoi(c.QueryParam(name))
		if err != nil {
			return badNumber(c, name)
		}
		mins[i] = n
	}
	res, err := h.engine.Load().ByMinStats(mins[0], mins[1], mins[2])
	return h.respond(c, res, err, "no pokemon has such powerful stats")
}

func (h *Handler) GetLegendary(c echo.Context) error {
	t1 := engine.NormalizeType(c.QueryParam("type1"))
	t2 := engine.NormalizeType(c.QueryParam("type2"))
	res, err := h.engine.Load().LegendaryOfTypes(t1, t2)
	return h.respond(c, res, err, "no such legendary pokemon")
}

// team in draw order
func (h *Handler) GetTeam(c echo.Context) error {
	res, err := h.engine.Load().RandomTeam()
	return h.respond(c, res, err, "pokedex has no pokemon")
}

func (h *Handler) GetSummary(c echo.Context) error {
	data, err := h.engine.Load().Summarize()
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, data)
}

// respond writes res in the format picked by ?format= (json, table or arrow).
func (h *Handler) respond(c echo.Context, res *engine.Result, err error, notFound string) error {
	if err != nil {
		return h.fail(c, err, notFound)
	}
	eng := h.engine.Load()

	switch c.QueryParam("format") {
	case "table":
		return c.String(http.StatusOK, engine.Render(eng.Store().Header(), res.Rows))
	case "arrow":
		creatures, err := eng.Creatures(res)
		if err != nil {
			return h.fail(c, err, "")
		}
		c.Response().Header().Set(echo.HeaderContentType, export.ArrowContentType)
		c.Response().WriteHeader(http.StatusOK)
		return export.WriteArrow(c.Response(), creatures)
	case "", "json":
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown format " + strconv.Quote(c.QueryParam("format"))})
	}

	creatures, err := eng.Creatures(res)
	if err != nil {
		return h.fail(c, err, "")
	}
	total := len(creatures)
	limit, offset := getPaginationParams(c, total)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, models.Page{
		Data:   creatures[offset:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *Handler) fail(c echo.Context, err error, notFound string) error {
	var fe *engine.FieldError
	switch {
	case errors.Is(err, engine.ErrNoResults):
		msg := notFound
		if msg == "" {
			msg = err.Error()
		}
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msg})
	case errors.Is(err, engine.ErrNotPositive), errors.Is(err, engine.ErrExceedsStore):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &fe):
		c.Logger().Errorf("corrupt pokedex data: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	default:
		return err
	}
}
