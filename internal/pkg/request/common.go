package request

// ByIDRequest is a common struct for endpoints that take a numeric ID path parameter.
// Catalog entities (malls, slots, bookings) use serial IDs because the chat
// commands reference them by number ("book slot 5").
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ByUUIDRequest is the equivalent for UUID-keyed entities (conversations, files).
type ByUUIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByUUIDRequest.
func (r *ByUUIDRequest) Validate() error {
	return nil
}

// ListParams holds common pagination parameters for list endpoints.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
