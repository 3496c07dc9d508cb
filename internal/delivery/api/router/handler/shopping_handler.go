package handler

import (
	"io"
	"log/slog"
	"net/http"

	"mealplanner/config"
	"mealplanner/internal/delivery/api/dto"
	"mealplanner/internal/delivery/api/middleware"
	"mealplanner/internal/delivery/api/response"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/errors"
	"mealplanner/internal/usecase"
	"mealplanner/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// receiptFormField is the multipart field carrying the receipt image.
const receiptFormField = "receipt"

// ShoppingHandlerParams holds dependencies for ShoppingHandler, injected by Fx.
type ShoppingHandlerParams struct {
	fx.In

	ShoppingUC usecase.ShoppingUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ShoppingHandler serves the /shopping endpoints.
type ShoppingHandler struct {
	shoppingUC      usecase.ShoppingUsecase
	maxReceiptBytes int64
	logger          *slog.Logger
}

// NewShoppingHandler is the constructor for ShoppingHandler
func NewShoppingHandler(params ShoppingHandlerParams) *ShoppingHandler {
	var maxReceiptBytes int64
	if params.Config.Receipts != nil {
		maxReceiptBytes = params.Config.Receipts.MaxBytes
	}

	return &ShoppingHandler{
		shoppingUC:      params.ShoppingUC,
		maxReceiptBytes: maxReceiptBytes,
		logger:          params.Logger,
	}
}

func (h *ShoppingHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logs, err := h.shoppingUC.GetShoppingLogs(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingLogResponses(logs), "OK")
}

// Create stores a log together with its initial details.
func (h *ShoppingHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req dto.CreateShoppingLogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.shoppingUC.CreateShoppingLog(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewShoppingLogResponse(log), "Shopping log created")
}

func (h *ShoppingHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.shoppingUC.GetShoppingLog(c.Request().Context(), userID, logID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingLogResponse(log), "OK")
}

// Update patches scalar fields; details are left untouched.
func (h *ShoppingHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.UpdateShoppingLogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.shoppingUC.UpdateShoppingLog(c.Request().Context(), userID, logID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingLogResponse(log), "Shopping log updated")
}

func (h *ShoppingHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shoppingUC.DeleteShoppingLog(c.Request().Context(), userID, logID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shopping log deleted")
}

func (h *ShoppingHandler) ListDetails(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.shoppingUC.GetShoppingDetails(c.Request().Context(), userID, logID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingDetailResponses(details), "OK")
}

func (h *ShoppingHandler) CreateDetails(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.CreateShoppingDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.shoppingUC.CreateShoppingDetails(c.Request().Context(), userID, logID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewShoppingDetailResponses(details), "Shopping details created")
}

func (h *ShoppingHandler) UpdateDetail(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	detailID, err := pathID(c, "detailId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.UpdateShoppingDetailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.shoppingUC.UpdateShoppingDetail(c.Request().Context(), userID, detailID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingDetailResponse(detail), "Shopping detail updated")
}

func (h *ShoppingHandler) DeleteDetail(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	detailID, err := pathID(c, "detailId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shoppingUC.DeleteShoppingDetail(c.Request().Context(), userID, detailID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shopping detail deleted")
}

// RecomputeTotal rewrites the cached total from the details.
func (h *ShoppingHandler) RecomputeTotal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.shoppingUC.RecomputeTotal(c.Request().Context(), userID, logID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingLogResponse(log), "Total recomputed")
}

// UploadReceipt stores the multipart "receipt" file and points the log at it.
func (h *ShoppingHandler) UploadReceipt(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.readReceipt(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.shoppingUC.AttachReceipt(c.Request().Context(), userID, logID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewShoppingLogResponse(log), "Receipt uploaded")
}

// DownloadReceipt streams the stored receipt image.
func (h *ShoppingHandler) DownloadReceipt(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	logID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.shoppingUC.GetReceipt(c.Request().Context(), userID, logID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, receipt.ContentType, receipt.Data)
}

func (h *ShoppingHandler) readReceipt(c echo.Context) (*usecase.ReceiptInput, error) {
	fileHeader, err := c.FormFile(receiptFormField)
	if err != nil {
		return nil, domainerrors.NewValidationError(receiptFormField, "multipart file is required")
	}
	if h.maxReceiptBytes > 0 && fileHeader.Size > h.maxReceiptBytes {
		return nil, domainerrors.ErrReceiptTooLarge.WithDetails(map[string]string{"maxSize": util.FormatBytes(h.maxReceiptBytes)})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open receipt upload")
	}
	defer file.Close()

	reader := io.Reader(file)
	if h.maxReceiptBytes > 0 {
		// One extra byte lets the usecase detect oversize bodies with a lying header.
		reader = io.LimitReader(file, h.maxReceiptBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read receipt upload")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &usecase.ReceiptInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
