package handlers

import (
	"context"
	"errors"
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/samvad-hq/samvad-item-client/internal/domain"
	"github.com/samvad-hq/samvad-item-client/internal/itemclient"
	"github.com/samvad-hq/samvad-item-client/internal/logger"
	"github.com/samvad-hq/samvad-item-client/internal/validation"
)

// ItemGateway is the part of the item client the routes depend on.
type ItemGateway interface {
	RetrieveItems(ctx context.Context) iter.Seq2[domain.Item, error]
	ExchangeItems(ctx context.Context) iter.Seq2[domain.Item, error]
	RetrieveErrorItems(ctx context.Context) iter.Seq2[domain.Item, error]
	ExchangeErrorItems(ctx context.Context) iter.Seq2[domain.Item, error]
	RetrieveItem(ctx context.Context, id string) (domain.Item, error)
	ExchangeItem(ctx context.Context, id string) (domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// HandlerConfig groups dependencies for the item routes.
type HandlerConfig struct {
	Gateway ItemGateway
	Log     logger.Logger
}

type itemsHandler struct {
	gw  ItemGateway
	log logger.Logger
	v   *validatorv10.Validate
}

// RegisterItemRoutes registers the /client routes that forward to the item service.
func RegisterItemRoutes(r *gin.Engine, cfg HandlerConfig) {
	log := cfg.Log
	if log == nil {
		log = logger.NopLogger{}
	}
	h := &itemsHandler{gw: cfg.Gateway, log: log, v: validation.New()}

	g := r.Group("/client")
	g.GET("/retrieve", h.list(h.gw.RetrieveItems))
	g.GET("/exchange", h.list(h.gw.ExchangeItems))
	g.GET("/retrieve/error", h.list(h.gw.RetrieveErrorItems))
	g.GET("/exchange/error", h.list(h.gw.ExchangeErrorItems))
	g.GET("/retrieve/:id", h.one(h.gw.RetrieveItem))
	g.GET("/exchange/:id", h.one(h.gw.ExchangeItem))
	g.GET("/post", h.postFromQuery)
	g.POST("/createItem", h.create)
	g.PUT("/updateItem/:id", h.update)
	g.DELETE("/deleteItem/:id", h.delete)
}

// list drains the sequence before writing so a failure can still set the status.
func (h *itemsHandler) list(source func(context.Context) iter.Seq2[domain.Item, error]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := make([]domain.Item, 0)
		for item, err := range source(c.Request.Context()) {
			if err != nil {
				h.writeError(c, err)
				return
			}
			items = append(items, item)
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *itemsHandler) one(fetch func(context.Context, string) (domain.Item, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.PathID(c, h.v)
		if err != nil {
			return
		}
		item, err := fetch(c.Request.Context(), id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (h *itemsHandler) postFromQuery(c *gin.Context) {
	var q validation.ItemQuery
	if err := validation.BindQueryAndValidate(c, &q, h.v); err != nil {
		return
	}
	h.respondItem(c, func(ctx context.Context) (domain.Item, error) {
		return h.gw.CreateItem(ctx, q.Item())
	})
}

func (h *itemsHandler) create(c *gin.Context) {
	var req validation.ItemRequest
	if err := validation.BindAndValidate(c, &req, h.v); err != nil {
		return
	}
	h.respondItem(c, func(ctx context.Context) (domain.Item, error) {
		return h.gw.CreateItem(ctx, req.Item())
	})
}

func (h *itemsHandler) update(c *gin.Context) {
	id, err := validation.PathID(c, h.v)
	if err != nil {
		return
	}
	var req validation.ItemRequest
	if err := validation.BindAndValidate(c, &req, h.v); err != nil {
		return
	}
	h.respondItem(c, func(ctx context.Context) (domain.Item, error) {
		return h.gw.UpdateItem(ctx, id, req.Item())
	})
}

func (h *itemsHandler) delete(c *gin.Context) {
	id, err := validation.PathID(c, h.v)
	if err != nil {
		return
	}
	if err := h.gw.DeleteItem(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *itemsHandler) respondItem(c *gin.Context, call func(context.Context) (domain.Item, error)) {
	item, err := call(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *itemsHandler) writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	h.log.WarnObj("item request failed", "item_error", map[string]any{
		"request_id": c.GetString(requestIDKey),
		"path":       c.FullPath(),
		"status":     status,
		"error":      err.Error(),
	})
	c.JSON(status, body)
}

// errorResponse maps a gateway error onto this service's own status: client and
// server kinds pass the upstream status through, transport failures become 502,
// or 504 when a deadline expired.
func errorResponse(err error) (int, gin.H) {
	var gwErr *itemclient.Error
	if !errors.As(err, &gwErr) {
		return http.StatusInternalServerError, gin.H{"error": "internal_error", "message": err.Error()}
	}

	status := gwErr.Status
	switch gwErr.Kind {
	case itemclient.KindClient:
		if status < 400 || status > 499 {
			status = http.StatusBadRequest
		}
	case itemclient.KindServer:
		if status < 500 || status > 599 {
			status = http.StatusInternalServerError
		}
	default:
		status = http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
	}

	msg := gwErr.Message
	if msg == "" && gwErr.Err != nil {
		msg = gwErr.Err.Error()
	}
	return status, gin.H{"error": string(gwErr.Kind), "message": msg}
}
