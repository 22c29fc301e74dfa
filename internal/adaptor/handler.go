package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

const rootMessage = "RK Industry API"

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Product *ProductHandler
	Cart    *CartHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Product, log),
		Cart:    NewCartHandler(service.Cart, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// Root handles GET {prefix}/
func Root(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMessage(w, rootMessage)
}

// decodeJSON reads the request body into dst. Field validation belongs to
// the services; this only rejects bodies that are not JSON at all.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps usecase error kinds onto HTTP statuses. A taken
// email is a conflict but is answered with 400, as clients expect.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	detail := err.Error()

	switch {
	case errors.Is(err, usecase.ErrBadRequest):
		log.Warn(operation+" validation failed", zap.Error(err))
		// Left as a nil interface so the errors key is omitted.
		var fields any
		var serviceErr *usecase.Error
		if errors.As(err, &serviceErr) && len(serviceErr.Fields) > 0 {
			fields = serviceErr.Fields
		}
		utils.ResponseBadRequest(w, detail, fields)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, detail, nil)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, detail)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, detail)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
