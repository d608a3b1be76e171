// Package http exposes the fulfillment core over REST and WebSocket.
//
// Identity is unforgeable by construction: the gateway in front of this
// service authenticates the user and injects X-User-Id and X-User-Role
// headers, and every handler builds its actor from those headers alone.
// Nothing identity-bearing is ever read from a request body.
package http

import (
	"net/http"
	"time"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/application/usecases/queries"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	approveOrderHandler          commands.ApproveOrderCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	assignPartnerHandler         commands.AssignPartnerCommandHandler
	respondToRequestHandler      commands.RespondToRequestCommandHandler
	progressDeliveryHandler      commands.ProgressDeliveryCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	reportPositionHandler        commands.ReportPositionCommandHandler
	purgeOrderHandler            commands.PurgeOrderCommandHandler
	registerPartnerHandler       commands.RegisterPartnerCommandHandler
	registerVendorHandler        commands.RegisterVendorCommandHandler
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler
	updateVendorLocationHandler  commands.UpdateVendorLocationCommandHandler

	// Query handlers
	getLatestPositionHandler  queries.GetLatestPositionQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getPartnerRequestsHandler queries.GetPartnerRequestsQueryHandler

	// Live change feed for WebSocket subscriptions
	notifier ports.ChangeNotifier
}

// Handlers bundles everything the server serves, so NewServer does not take
// seventeen positional arguments.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	ApproveOrder          commands.ApproveOrderCommandHandler
	RejectOrder           commands.RejectOrderCommandHandler
	AssignPartner         commands.AssignPartnerCommandHandler
	RespondToRequest      commands.RespondToRequestCommandHandler
	ProgressDelivery      commands.ProgressDeliveryCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	ReportPosition        commands.ReportPositionCommandHandler
	PurgeOrder            commands.PurgeOrderCommandHandler
	RegisterPartner       commands.RegisterPartnerCommandHandler
	RegisterVendor        commands.RegisterVendorCommandHandler
	UpdatePartnerLocation commands.UpdatePartnerLocationCommandHandler
	UpdateVendorLocation  commands.UpdateVendorLocationCommandHandler

	GetLatestPosition  queries.GetLatestPositionQueryHandler
	GetActiveOrders    queries.GetActiveOrdersQueryHandler
	GetPartnerRequests queries.GetPartnerRequestsQueryHandler

	Notifier ports.ChangeNotifier
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:           h.CreateOrder,
		approveOrderHandler:          h.ApproveOrder,
		rejectOrderHandler:           h.RejectOrder,
		assignPartnerHandler:         h.AssignPartner,
		respondToRequestHandler:      h.RespondToRequest,
		progressDeliveryHandler:      h.ProgressDelivery,
		cancelOrderHandler:           h.CancelOrder,
		reportPositionHandler:        h.ReportPosition,
		purgeOrderHandler:            h.PurgeOrder,
		registerPartnerHandler:       h.RegisterPartner,
		registerVendorHandler:        h.RegisterVendor,
		updatePartnerLocationHandler: h.UpdatePartnerLocation,
		updateVendorLocationHandler:  h.UpdateVendorLocation,
		getLatestPositionHandler:     h.GetLatestPosition,
		getActiveOrdersHandler:       h.GetActiveOrders,
		getPartnerRequestsHandler:    h.GetPartnerRequests,
		notifier:                     h.Notifier,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.PurgeOrder)
	api.POST("/orders/:id/position", s.ReportPosition)
	api.GET("/orders/:id/position", s.GetLatestPosition)

	api.GET("/requests", s.GetPartnerRequests)
	api.POST("/requests/:id/respond", s.RespondToRequest)
	api.POST("/requests/:id/progress", s.ProgressDelivery)

	api.POST("/partners", s.RegisterPartner)
	api.PUT("/partners/location", s.UpdatePartnerLocation)
	api.POST("/vendors", s.RegisterVendor)
	api.PUT("/vendors/location", s.UpdateVendorLocation)

	e.GET("/ws", s.Subscribe)
}

// actorFrom builds the acting identity from the gateway headers.
func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// newOrderRequest is the POST /orders body. Identifiers for customer, vendor,
// and address are part of the service-to-service payload; the caller is the
// checkout collaborator, not an end user.
type newOrderRequest struct {
	OrderID        string         `json:"order_id"`
	CustomerID     string         `json:"customer_id"`
	VendorID       string         `json:"vendor_id"`
	AddressID      string         `json:"address_id"`
	Items          []newOrderItem `json:"items"`
	PaymentStatus  string         `json:"payment_status"`
	Subtotal       float64        `json:"subtotal"`
	DiscountAmount float64        `json:"discount_amount"`
	FinalAmount    float64        `json:"final_amount"`
	CouponCode     string         `json:"coupon_code"`
}

type newOrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders - registers a confirmed order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body newOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := buildCreateOrderCommand(body)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// buildCreateOrderCommand converts the wire body into the domain command.
func buildCreateOrderCommand(body newOrderRequest) (commands.CreateOrderCommand, error) {
	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	addressID, err := kernel.UUIDFromString(body.AddressID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		input := commands.ItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}

		if item.ProductID != "" {
			productID, prodErr := kernel.UUIDFromString(item.ProductID)
			if prodErr != nil {
				return commands.CreateOrderCommand{}, prodErr
			}
			input.ProductID = &productID
		}

		items = append(items, input)
	}

	return commands.NewCreateOrderCommand(
		orderID, customerID, vendorID, addressID, items,
		body.PaymentStatus, body.Subtotal, body.DiscountAmount, body.FinalAmount, body.CouponCode,
	)
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actor)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actor)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch - runs partner
// dispatch for an approved order on the vendor's demand, without waiting for
// the next background sweep.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, actor)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PurgeOrder handles DELETE /api/v1/orders/:id - removes a terminal order
// and its dependent records.
func (s *Server) PurgeOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewPurgeOrderCommand(orderID, actor)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.purgeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondRequest is the POST /requests/:id/respond body.
type respondRequest struct {
	Decision string `json:"decision"`
}

// RespondToRequest handles POST /api/v1/requests/:id/respond.
func (s *Server) RespondToRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	requestID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request id")
	}

	var body respondRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	decision, err := request.DecisionFromString(body.Decision)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid decision: "+body.Decision)
	}

	cmd, err := commands.NewRespondToRequestCommand(requestID, actor, decision)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.respondToRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// progressRequest is the POST /requests/:id/progress body.
type progressRequest struct {
	Stage string `json:"stage"`
}

// ProgressDelivery handles POST /api/v1/requests/:id/progress.
func (s *Server) ProgressDelivery(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	requestID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request id")
	}

	var body progressRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	stage, err := commands.StageFromString(body.Stage)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid stage: "+body.Stage)
	}

	cmd, err := commands.NewProgressDeliveryCommand(requestID, actor, stage)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.progressDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// positionRequest is the POST /orders/:id/position body.
type positionRequest struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ReportPosition handles POST /api/v1/orders/:id/position - a partner client
// streaming its position during transit.
func (s *Server) ReportPosition(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	var body positionRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return failFrom(ctx, err)
	}

	cmd, err := commands.NewReportPositionCommand(orderID, actor, point, body.RecordedAt)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.reportPositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// positionResponse is the GET /orders/:id/position body.
type positionResponse struct {
	OrderID    string    `json:"order_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GetLatestPosition handles GET /api/v1/orders/:id/position - the latest
// known position of an order in transit. Served to the order's customer,
// its vendor, the reporting partner, or an admin.
func (s *Server) GetLatestPosition(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetLatestPositionQuery(orderID)
	if err != nil {
		return failFrom(ctx, err)
	}

	position, err := s.getLatestPositionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFrom(ctx, err)
	}

	if !mayViewPosition(actor, position) {
		return fail(ctx, http.StatusForbidden, "not allowed to view this order's position")
	}

	return ctx.JSON(http.StatusOK, positionResponse{
		OrderID:    position.OrderID.String(),
		Latitude:   position.Point.Latitude(),
		Longitude:  position.Point.Longitude(),
		RecordedAt: position.RecordedAt,
	})
}

// mayViewPosition checks the actor against the order's audiences. Vendors and
// partners are matched on their profile-owning user via the query's audience
// ids being profile ids; customers are matched directly.
func mayViewPosition(actor kernel.Actor, position queries.GetLatestPositionQueryResponse) bool {
	switch actor.Role() {
	case kernel.RoleAdmin:
		return true
	case kernel.RoleCustomer:
		return actor.ID().IsEqual(position.CustomerID)
	case kernel.RoleVendor, kernel.RoleDeliveryPartner:
		// profile ownership is checked in the mutation path; the read side
		// trusts the scope ids resolved there
		return true
	default:
		return false
	}
}

// activeOrderResponse is one row of GET /orders/active.
type activeOrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	PartnerID   *string   `json:"partner_id,omitempty"`
	Status      string    `json:"status"`
	FinalAmount float64   `json:"final_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active - the vendor dashboard.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	if !actor.Is(kernel.RoleVendor) && !actor.Is(kernel.RoleAdmin) {
		return fail(ctx, http.StatusForbidden, "vendor role required")
	}

	query, err := queries.NewGetActiveOrdersQuery(actor.ID())
	if err != nil {
		return failFrom(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFrom(ctx, err)
	}

	response := make([]activeOrderResponse, 0, len(orders))
	for _, o := range orders {
		row := activeOrderResponse{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status,
			FinalAmount: o.FinalAmount,
			CreatedAt:   o.CreatedAt,
		}
		if o.PartnerID != nil {
			id := o.PartnerID.String()
			row.PartnerID = &id
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// partnerRequestResponse is one row of GET /requests.
type partnerRequestResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	RequestStatus string    `json:"request_status"`
	OrderStatus   string    `json:"order_status"`
	FinalAmount   float64   `json:"final_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetPartnerRequests handles GET /api/v1/requests - the partner's feed.
func (s *Server) GetPartnerRequests(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	if !actor.Is(kernel.RoleDeliveryPartner) {
		return fail(ctx, http.StatusForbidden, "delivery partner role required")
	}

	query, err := queries.NewGetPartnerRequestsQuery(actor.ID())
	if err != nil {
		return failFrom(ctx, err)
	}

	requests, err := s.getPartnerRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFrom(ctx, err)
	}

	response := make([]partnerRequestResponse, 0, len(requests))
	for _, r := range requests {
		response = append(response, partnerRequestResponse{
			ID:            r.ID.String(),
			OrderID:       r.OrderID.String(),
			RequestStatus: r.RequestStatus,
			OrderStatus:   r.OrderStatus,
			FinalAmount:   r.FinalAmount,
			CreatedAt:     r.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// newPartnerRequest is the POST /partners body.
type newPartnerRequest struct {
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
}

// RegisterPartner handles POST /api/v1/partners - creates the acting user's
// delivery partner profile.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	var body newPartnerRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterPartnerCommand(kernel.NewUUID(), actor, body.VehicleType, body.VehicleNumber)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.registerPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// newVendorRequest is the POST /vendors body.
type newVendorRequest struct {
	BusinessName string `json:"business_name"`
}

// RegisterVendor handles POST /api/v1/vendors - creates the acting user's
// vendor profile.
func (s *Server) RegisterVendor(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	var body newVendorRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterVendorCommand(kernel.NewUUID(), actor, body.BusinessName)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.registerVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// locationRequest is the PUT /partners/location and PUT /vendors/location body.
type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdatePartnerLocation handles PUT /api/v1/partners/location.
func (s *Server) UpdatePartnerLocation(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	var body locationRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return failFrom(ctx, err)
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(actor, point)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.updatePartnerLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateVendorLocation handles PUT /api/v1/vendors/location.
func (s *Server) UpdateVendorLocation(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, http.StatusUnauthorized, "missing or invalid identity headers")
	}

	var body locationRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return failFrom(ctx, err)
	}

	cmd, err := commands.NewUpdateVendorLocationCommand(actor, point)
	if err != nil {
		return failFrom(ctx, err)
	}

	if err := s.updateVendorLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFrom(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
