package http

import (
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/staff"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const birthdateLayout = "2006-01-02"

// SessionData is the login response payload.
type SessionData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func sessionToData(s commands.Session) SessionData {
	return SessionData{
		ID:    s.Principal.ID.String(),
		Name:  s.Name,
		Email: s.Principal.Email,
		Role:  s.Principal.Role.String(),
		Token: s.Token,
	}
}

// CustomerData is the customer account payload. The password hash never
// leaves the server.
type CustomerData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Birthdate *string   `json:"birthdate,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func customerToData(c *customer.Customer) CustomerData {
	data := CustomerData{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
	}
	if c.Birthdate() != nil {
		birthdate := c.Birthdate().Format(birthdateLayout)
		data.Birthdate = &birthdate
	}
	return data
}

func customerResponseToData(c queries.CustomerResponse) CustomerData {
	data := CustomerData{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
	if c.Birthdate != nil {
		birthdate := c.Birthdate.Format(birthdateLayout)
		data.Birthdate = &birthdate
	}
	return data
}

// StaffData is the staff account payload.
type StaffData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func staffToData(s *staff.Staff) StaffData {
	return StaffData{
		ID:        s.ID().String(),
		Name:      s.Name(),
		Email:     s.Email(),
		Role:      s.Role().String(),
		CreatedAt: s.CreatedAt(),
	}
}

func staffResponseToData(s queries.StaffResponse) StaffData {
	return StaffData{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}

// PackageData is the catalog package payload. Money travels as a string.
type PackageData struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	MinPax      int       `json:"minPax"`
	Price       string    `json:"price"`
	Description string    `json:"description,omitempty"`
	Photos      []string  `json:"photos"`
	CreatedAt   time.Time `json:"createdAt"`
}

func packageToData(p *catalog.Package) PackageData {
	return PackageData{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Kind:        p.Kind(),
		Category:    p.Category(),
		MinPax:      p.MinPax(),
		Price:       p.Price().String(),
		Description: p.Description(),
		Photos:      p.Photos(),
		CreatedAt:   p.CreatedAt(),
	}
}

func packageResponseToData(p queries.PackageResponse) PackageData {
	return PackageData{
		ID:          p.ID.String(),
		Name:        p.Name,
		Kind:        p.Kind,
		Category:    p.Category,
		MinPax:      p.MinPax,
		Price:       p.Price.String(),
		Description: p.Description,
		Photos:      p.Photos,
		CreatedAt:   p.CreatedAt,
	}
}

// OrderLineData is one snapshot-priced line of an order.
type OrderLineData struct {
	ID          string `json:"id"`
	PackageID   string `json:"packageId"`
	PackageName string `json:"packageName,omitempty"`
	Subtotal    string `json:"subtotal"`
}

// OrderData is the order payload used by listings and single-order reads.
type OrderData struct {
	ID            string          `json:"id"`
	TrackingCode  string          `json:"trackingCode"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	OrderDate     time.Time       `json:"orderDate"`
	Total         string          `json:"total"`
	Status        string          `json:"status"`
	Lines         []OrderLineData `json:"lines,omitempty"`
}

func orderToData(o *order.Order) OrderData {
	lines := make([]OrderLineData, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineData{
			ID:        l.ID().String(),
			PackageID: l.PackageID().String(),
			Subtotal:  l.Subtotal().String(),
		})
	}

	return OrderData{
		ID:           o.ID().String(),
		TrackingCode: o.TrackingCode(),
		CustomerID:   o.CustomerID().String(),
		OrderDate:    o.OrderDate(),
		Total:        o.Total().String(),
		Status:       o.Status().String(),
		Lines:        lines,
	}
}

func orderSummaryToData(s queries.OrderSummaryResponse) OrderData {
	return OrderData{
		ID:            s.ID.String(),
		TrackingCode:  s.TrackingCode,
		CustomerID:    s.CustomerID.String(),
		CustomerName:  s.CustomerName,
		PaymentMethod: s.PaymentMethod,
		OrderDate:     s.OrderDate,
		Total:         s.Total.String(),
		Status:        s.Status,
	}
}

func orderDetailToData(d queries.OrderDetailResponse) OrderData {
	data := orderSummaryToData(d.OrderSummaryResponse)
	data.Lines = make([]OrderLineData, 0, len(d.Lines))
	for _, l := range d.Lines {
		data.Lines = append(data.Lines, OrderLineData{
			ID:          l.ID.String(),
			PackageID:   l.PackageID.String(),
			PackageName: l.PackageName,
			Subtotal:    l.Subtotal.String(),
		})
	}
	return data
}

// DeliveryData is the delivery record payload.
type DeliveryData struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	CourierID   string     `json:"courierId"`
	PickupTime  time.Time  `json:"pickupTime"`
	ArrivalTime *time.Time `json:"arrivalTime,omitempty"`
	Status      string     `json:"status"`
}

func deliveryToData(d *delivery.Delivery) DeliveryData {
	return DeliveryData{
		ID:          d.ID().String(),
		OrderID:     d.OrderID().String(),
		CourierID:   d.CourierID().String(),
		PickupTime:  d.PickupTime(),
		ArrivalTime: d.ArrivalTime(),
		Status:      d.Status().String(),
	}
}

// DeliveryTaskData is one entry in a courier's work list.
type DeliveryTaskData struct {
	OrderID        string     `json:"orderId"`
	TrackingCode   string     `json:"trackingCode"`
	CustomerName   string     `json:"customerName"`
	Address        string     `json:"address"`
	OrderStatus    string     `json:"orderStatus"`
	DeliveryID     *string    `json:"deliveryId,omitempty"`
	DeliveryStatus *string    `json:"deliveryStatus,omitempty"`
	PickupTime     *time.Time `json:"pickupTime,omitempty"`
	ArrivalTime    *time.Time `json:"arrivalTime,omitempty"`
}

func deliveryTaskToData(t queries.DeliveryTaskResponse) DeliveryTaskData {
	data := DeliveryTaskData{
		OrderID:        t.OrderID.String(),
		TrackingCode:   t.TrackingCode,
		CustomerName:   t.CustomerName,
		Address:        t.Address,
		OrderStatus:    t.OrderStatus,
		DeliveryStatus: t.DeliveryStatus,
		PickupTime:     t.PickupTime,
		ArrivalTime:    t.ArrivalTime,
	}
	if t.DeliveryID != nil {
		id := t.DeliveryID.String()
		data.DeliveryID = &id
	}
	return data
}

// PaymentMethodData is one payment method with its account records.
type PaymentMethodData struct {
	ID      string                    `json:"id"`
	Name    string                    `json:"name"`
	Details []PaymentMethodDetailData `json:"details"`
}

// PaymentMethodDetailData is one account record under a payment method.
type PaymentMethodDetailData struct {
	ID            string `json:"id"`
	AccountNumber string `json:"accountNumber"`
	AccountPlace  string `json:"accountPlace"`
	Logo          string `json:"logo,omitempty"`
}

func paymentMethodToData(m queries.PaymentMethodResponse) PaymentMethodData {
	details := make([]PaymentMethodDetailData, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, PaymentMethodDetailData{
			ID:            d.ID.String(),
			AccountNumber: d.AccountNumber,
			AccountPlace:  d.AccountPlace,
			Logo:          d.Logo,
		})
	}

	return PaymentMethodData{
		ID:      m.ID.String(),
		Name:    m.Name,
		Details: details,
	}
}

// ProfileData is the session owner's account payload.
type ProfileData struct {
	CustomerData
	Role string `json:"role"`
}

func profileToData(p queries.ProfileResponse) ProfileData {
	return ProfileData{
		CustomerData: customerResponseToData(p.CustomerResponse),
		Role:         p.Role,
	}
}

// DashboardData is the back-office dashboard payload.
type DashboardData struct {
	TotalOrders   int64       `json:"totalOrders"`
	PendingOrders int64       `json:"pendingOrders"`
	Customers     int64       `json:"customers"`
	Packages      int64       `json:"packages"`
	Revenue       string      `json:"revenue"`
	RecentOrders  []OrderData `json:"recentOrders"`
}

func dashboardToData(s queries.DashboardStatsResponse) DashboardData {
	recent := make([]OrderData, 0, len(s.RecentOrders))
	for _, o := range s.RecentOrders {
		recent = append(recent, orderSummaryToData(o))
	}

	return DashboardData{
		TotalOrders:   s.TotalOrders,
		PendingOrders: s.PendingOrders,
		Customers:     s.Customers,
		Packages:      s.Packages,
		Revenue:       s.Revenue.String(),
		RecentOrders:  recent,
	}
}
