package models

type HotelSettings struct {
	HotelName       string  `json:"hotelName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	CheckInTime     string  `json:"checkInTime"`
	CheckOutTime    string  `json:"checkOutTime"`
	Currency        string  `json:"currency"`
	TaxRate         float64 `json:"taxRate"`
	EnableBookings  bool    `json:"enableBookings"`
	EnableReviews   bool    `json:"enableReviews"`
	MaintenanceMode bool    `json:"maintenanceMode"`
}

type HotelSettingsPatch struct {
	HotelName       *string  `json:"hotelName,omitempty"`
	Email           *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	Address         *string  `json:"address,omitempty"`
	CheckInTime     *string  `json:"checkInTime,omitempty"`
	CheckOutTime    *string  `json:"checkOutTime,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	TaxRate         *float64 `json:"taxRate,omitempty" binding:"omitempty,gte=0,lte=100"`
	EnableBookings  *bool    `json:"enableBookings,omitempty"`
	EnableReviews   *bool    `json:"enableReviews,omitempty"`
	MaintenanceMode *bool    `json:"maintenanceMode,omitempty"`
}

func (p HotelSettingsPatch) Apply(s *HotelSettings) {
	if p.HotelName != nil {
		s.HotelName = *p.HotelName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.CheckInTime != nil {
		s.CheckInTime = *p.CheckInTime
	}
	if p.CheckOutTime != nil {
		s.CheckOutTime = *p.CheckOutTime
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.TaxRate != nil {
		s.TaxRate = *p.TaxRate
	}
	if p.EnableBookings != nil {
		s.EnableBookings = *p.EnableBookings
	}
	if p.EnableReviews != nil {
		s.EnableReviews = *p.EnableReviews
	}
	if p.MaintenanceMode != nil {
		s.MaintenanceMode = *p.MaintenanceMode
	}
}
