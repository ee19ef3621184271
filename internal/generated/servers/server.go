// Package servers provides primitives to interact with the openapi HTTP API.
// Types and routes mirror api/openapi.json one to one.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStatus.
const (
	OrderStatusDibatalkan OrderStatus = "Dibatalkan"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProses     OrderStatus = "Proses"
	OrderStatusSelesai    OrderStatus = "Selesai"
)

// Defines values for WalletEntryType.
const (
	Decrease WalletEntryType = "decrease"
	Increase WalletEntryType = "increase"
)

// Defines values for GetShippingReportParamsFormat.
const (
	Csv  GetShippingReportParamsFormat = "csv"
	Json GetShippingReportParamsFormat = "json"
)

// BalanceChange defines model for BalanceChange.
type BalanceChange struct {
	Amount      int64   `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// Contact defines model for Contact.
type Contact struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Postal   string `json:"postal"`
	Province string `json:"province"`
}

// CostBreakdown defines model for CostBreakdown.
type CostBreakdown struct {
	Base            int64 `json:"base"`
	DiscountAmount  int64 `json:"discountAmount"`
	DiscountPercent int   `json:"discountPercent"`
	LocationFee     int64 `json:"locationFee"`
	ServiceFee      int64 `json:"serviceFee"`
	Total           int64 `json:"total"`
	WeightFee       int64 `json:"weightFee"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Balance      int64         `json:"balance"`
	RecentOrders []Order       `json:"recentOrders"`
	Services     []ServiceStat `json:"services"`
	Statuses     StatusCounts  `json:"statuses"`
	TotalOrders  int           `json:"totalOrders"`
	TotalRevenue int64         `json:"totalRevenue"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Item defines model for Item.
type Item struct {
	Category string `json:"category"`
	Height   string `json:"height"`
	Length   string `json:"length"`
	Name     string `json:"name"`

	// Weight Kilograms, e.g. "1.5" or "1,5 kg"
	Weight string `json:"weight"`
	Width  string `json:"width"`
}

// Order defines model for Order.
type Order struct {
	Amount    int64         `json:"amount"`
	Cost      CostBreakdown `json:"cost"`
	CreatedAt time.Time     `json:"createdAt"`
	Item      Item          `json:"item"`
	OrderNo   string        `json:"orderNo"`
	Payment   string        `json:"payment"`
	ReceiptNo string        `json:"receiptNo"`
	Receiver  Contact       `json:"receiver"`
	Sender    Contact       `json:"sender"`
	Service   string        `json:"service"`
	Status    OrderStatus   `json:"status"`
	Volume    float32       `json:"volume"`
}

// OrderStatus defines model for Order.Status.
type OrderStatus string

// Profile defines model for Profile.
type Profile struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`

	// Role admin or customer
	Role     *string `json:"role,omitempty"`
	Username string  `json:"username"`
}

// Rates defines model for Rates.
type Rates struct {
	BaseRate               int64 `json:"baseRate"`
	ExpressFee             int64 `json:"expressFee"`
	LoyaltyDiscountPercent int   `json:"loyaltyDiscountPercent"`
	RatePerKg              int64 `json:"ratePerKg"`
	SameDayFee             int64 `json:"sameDayFee"`
}

// RecentTracking defines model for RecentTracking.
type RecentTracking struct {
	Numbers []string `json:"numbers"`
}

// ReportRow defines model for ReportRow.
type ReportRow struct {
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	No        int       `json:"no"`
	OrderNo   string    `json:"orderNo"`
	Receiver  string    `json:"receiver"`
	Service   string    `json:"service"`
	Status    string    `json:"status"`
}

// ReportSummary defines model for ReportSummary.
type ReportSummary struct {
	Revenue     int64        `json:"revenue"`
	Statuses    StatusCounts `json:"statuses"`
	TotalOrders int          `json:"totalOrders"`
}

// ServiceStat defines model for ServiceStat.
type ServiceStat struct {
	Amount  int64   `json:"amount"`
	Count   int     `json:"count"`
	Percent float32 `json:"percent"`
	Service string  `json:"service"`
}

// ShipmentRequest defines model for ShipmentRequest.
type ShipmentRequest struct {
	Item Item `json:"item"`

	// Payment COD or Non-COD
	Payment  string  `json:"payment"`
	Receiver Contact `json:"receiver"`
	Sender   Contact `json:"sender"`

	// Service Reguler, Express or Same Day
	Service string `json:"service"`
}

// ShippingReport defines model for ShippingReport.
type ShippingReport struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Rows        []ReportRow   `json:"rows"`
	Summary     ReportSummary `json:"summary"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// StatusCounts defines model for StatusCounts.
type StatusCounts struct {
	Dibatalkan int `json:"dibatalkan"`
	Pending    int `json:"pending"`
	Proses     int `json:"proses"`
	Selesai    int `json:"selesai"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	Label string `json:"label"`
	Order Order  `json:"order"`
	Route string `json:"route"`
	Step  int    `json:"step"`
}

// Wallet defines model for Wallet.
type Wallet struct {
	Balance int64         `json:"balance"`
	History []WalletEntry `json:"history"`
}

// WalletEntry defines model for WalletEntry.
type WalletEntry struct {
	Amount      int64              `json:"amount"`
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Type        WalletEntryType    `json:"type"`
}

// WalletEntryType defines model for WalletEntry.Type.
type WalletEntryType string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// Q Search on order number or receiver name
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}

// GetDashboardParams defines parameters for GetDashboard.
type GetDashboardParams struct {
	// Q Search applied to the recent orders
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}

// GetShippingReportParams defines parameters for GetShippingReport.
type GetShippingReportParams struct {
	Format *GetShippingReportParamsFormat `form:"format,omitempty" json:"format,omitempty"`
}

// GetShippingReportParamsFormat defines parameters for GetShippingReport.
type GetShippingReportParamsFormat string

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = ShipmentRequest

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusChange

// SaveProfileJSONRequestBody defines body for SaveProfile for application/json ContentType.
type SaveProfileJSONRequestBody = Profile

// CreateQuoteJSONRequestBody defines body for CreateQuote for application/json ContentType.
type CreateQuoteJSONRequestBody = ShipmentRequest

// UpdateRatesJSONRequestBody defines body for UpdateRates for application/json ContentType.
type UpdateRatesJSONRequestBody = Rates

// DeductWalletJSONRequestBody defines body for DeductWallet for application/json ContentType.
type DeductWalletJSONRequestBody = BalanceChange

// TopUpWalletJSONRequestBody defines body for TopUpWallet for application/json ContentType.
type TopUpWalletJSONRequestBody = BalanceChange

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Admin dashboard statistics
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context, params GetDashboardParams) error
	// List orders, newest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Delete a completed order
	// (DELETE /api/v1/orders/{orderNo})
	DeleteOrder(ctx echo.Context, orderNo string) error
	// Get one order
	// (GET /api/v1/orders/{orderNo})
	GetOrder(ctx echo.Context, orderNo string) error
	// Move an order to another status
	// (PATCH /api/v1/orders/{orderNo}/status)
	UpdateOrderStatus(ctx echo.Context, orderNo string) error
	// Current user profile
	// (GET /api/v1/profile)
	GetProfile(ctx echo.Context) error
	// Store the current user profile
	// (PUT /api/v1/profile)
	SaveProfile(ctx echo.Context) error
	// Price a shipment without placing an order
	// (POST /api/v1/quotes)
	CreateQuote(ctx echo.Context) error
	// Current rate table
	// (GET /api/v1/rates)
	GetRates(ctx echo.Context) error
	// Replace the rate table
	// (PUT /api/v1/rates)
	UpdateRates(ctx echo.Context) error
	// Shipping report as JSON or CSV
	// (GET /api/v1/reports/shipping)
	GetShippingReport(ctx echo.Context, params GetShippingReportParams) error
	// Recently tracked numbers, newest first
	// (GET /api/v1/tracking/recent)
	GetRecentTracking(ctx echo.Context) error
	// Track an order by number or receipt alias
	// (GET /api/v1/tracking/{number})
	TrackOrder(ctx echo.Context, number string) error
	// Balance and recent history
	// (GET /api/v1/wallet)
	GetWallet(ctx echo.Context) error
	// Subtract from the balance
	// (POST /api/v1/wallet/deduct)
	DeductWallet(ctx echo.Context) error
	// Add to the balance
	// (POST /api/v1/wallet/top-up)
	TopUpWallet(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetDashboardParams
	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboard(ctx, params)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderNo" -------------
	var orderNo string

	err = runtime.BindStyledParameterWithOptions("simple", "orderNo", ctx.Param("orderNo"), &orderNo,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNo: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderNo)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderNo" -------------
	var orderNo string

	err = runtime.BindStyledParameterWithOptions("simple", "orderNo", ctx.Param("orderNo"), &orderNo,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNo: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderNo)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderNo" -------------
	var orderNo string

	err = runtime.BindStyledParameterWithOptions("simple", "orderNo", ctx.Param("orderNo"), &orderNo,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNo: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, orderNo)
	return err
}

// GetProfile converts echo context to params.
func (w *ServerInterfaceWrapper) GetProfile(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetProfile(ctx)
	return err
}

// SaveProfile converts echo context to params.
func (w *ServerInterfaceWrapper) SaveProfile(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SaveProfile(ctx)
	return err
}

// CreateQuote converts echo context to params.
func (w *ServerInterfaceWrapper) CreateQuote(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateQuote(ctx)
	return err
}

// GetRates converts echo context to params.
func (w *ServerInterfaceWrapper) GetRates(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRates(ctx)
	return err
}

// UpdateRates converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateRates(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateRates(ctx)
	return err
}

// GetShippingReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetShippingReport(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetShippingReportParams
	// ------------- Optional query parameter "format" -------------

	err = runtime.BindQueryParameter("form", true, false, "format", ctx.QueryParams(), &params.Format)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter format: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetShippingReport(ctx, params)
	return err
}

// GetRecentTracking converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecentTracking(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRecentTracking(ctx)
	return err
}

// TrackOrder converts echo context to params.
func (w *ServerInterfaceWrapper) TrackOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "number" -------------
	var number string

	err = runtime.BindStyledParameterWithOptions("simple", "number", ctx.Param("number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter number: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TrackOrder(ctx, number)
	return err
}

// GetWallet converts echo context to params.
func (w *ServerInterfaceWrapper) GetWallet(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWallet(ctx)
	return err
}

// DeductWallet converts echo context to params.
func (w *ServerInterfaceWrapper) DeductWallet(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeductWallet(ctx)
	return err
}

// TopUpWallet converts echo context to params.
func (w *ServerInterfaceWrapper) TopUpWallet(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TopUpWallet(ctx)
	return err
}

// EchoRouter is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderNo", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderNo", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderNo/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/profile", wrapper.GetProfile)
	router.PUT(baseURL+"/api/v1/profile", wrapper.SaveProfile)
	router.POST(baseURL+"/api/v1/quotes", wrapper.CreateQuote)
	router.GET(baseURL+"/api/v1/rates", wrapper.GetRates)
	router.PUT(baseURL+"/api/v1/rates", wrapper.UpdateRates)
	router.GET(baseURL+"/api/v1/reports/shipping", wrapper.GetShippingReport)
	router.GET(baseURL+"/api/v1/tracking/recent", wrapper.GetRecentTracking)
	router.GET(baseURL+"/api/v1/tracking/:number", wrapper.TrackOrder)
	router.GET(baseURL+"/api/v1/wallet", wrapper.GetWallet)
	router.POST(baseURL+"/api/v1/wallet/deduct", wrapper.DeductWallet)
	router.POST(baseURL+"/api/v1/wallet/top-up", wrapper.TopUpWallet)
}
