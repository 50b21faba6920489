package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yakoovad/mergington-activities/internal/service"
	"github.com/yakoovad/mergington-activities/pkg/logger"
	"github.com/yakoovad/mergington-activities/web"
	"go.uber.org/zap"
)

type Handler struct {
	activities *service.ActivityService

	healthChecker  HealthChecker
	metricsHandler http.Handler

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger:         logger,
		metricsHandler: promhttp.Handler(),
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithActivityService(activities *service.ActivityService) *Handler {
	h.activities = activities
	return h
}

func (h *Handler) WithMetricsHandler(m http.Handler) *Handler {
	h.metricsHandler = m
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}
	e.GET("/metrics", echo.WrapHandler(h.metricsHandler))

	e.GET("/", h.Root)
	e.StaticFS("/static", echo.MustSubFS(web.Assets, "static"))

	e.GET("/activities", h.ListActivities)
	e.POST("/activities/:activity_name/signup", h.Signup)
	e.DELETE("/activities/:activity_name/unregister", h.Unregister)
}

func (h *Handler) Root(e echo.Context) error {
	return e.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

func (h *Handler) ListActivities(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	activities, err := h.activities.List(e.Request().Context())
	if err != nil {
		l.Error("failed to list activities", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, activities)
}

func (h *Handler) Signup(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	req := &enrollmentRequest{}
	if err := h.decodeRequest(e, req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("signing up student",
		zap.String("activity", req.Activity),
		zap.String("email", req.Email))

	enrollment, err := h.activities.Enroll(e.Request().Context(), req.Activity, req.Email)
	if err != nil {
		l.Error("failed to sign up student",
			zap.String("activity", req.Activity),
			zap.String("email", req.Email),
			zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, enrollment)
}

func (h *Handler) Unregister(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	req := &enrollmentRequest{}
	if err := h.decodeRequest(e, req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("unregistering student",
		zap.String("activity", req.Activity),
		zap.String("email", req.Email))

	enrollment, err := h.activities.Withdraw(e.Request().Context(), req.Activity, req.Email)
	if err != nil {
		l.Error("failed to unregister student",
			zap.String("activity", req.Activity),
			zap.String("email", req.Email),
			zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, enrollment)
}

type enrollmentRequest struct {
	Activity string `param:"activity_name" validate:"required"`
	Email    string `query:"email" validate:"required"`
}

func (h *Handler) decodeRequest(e echo.Context, req *enrollmentRequest) *service.Error {
	if err := ProcessRequest(e, req, bindPathParams[enrollmentRequest], bindQueryParams[enrollmentRequest]); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request parameters")
	}

	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, errors.Wrap(err, "request validation failed").Error())
	}
	return nil
}

func (h *Handler) transportError(e echo.Context, err *service.Error) error {
	response := struct {
		Detail string         `json:"detail"`
		Error  *service.Error `json:"error"`
	}{Detail: err.Message, Error: err}

	switch err.Code {
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeAlreadyEnrolled, service.ErrorCodeCapacityExceeded, service.ErrorCodeNotEnrolled:
		return e.JSON(http.StatusBadRequest, response)
	case service.ErrorCodeInvalidBody:
		return e.JSON(http.StatusBadRequest, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}
