package request

type CreateBookingRequest struct {
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone"`
	EnrollmentNumber string `json:"enrollmentnumber"`
	CampusBus        bool   `json:"campusbus"`
	Boarding         bool   `json:"boarding"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid"`
}
