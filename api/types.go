package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler       siteHandler
	articleHandler    articleHandler
	categoryHandler   categoryHandler
	authorHandler     authorHandler
	commentHandler    commentHandler
	subscriberHandler subscriberHandler
	capsuleHandler    capsuleHandler
	archiveHandler    archiveHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// idsPayload is the body of the bulk moderation endpoints: a selected set of
// entity ids.
type idsPayload struct {
	IDs []string `json:"ids"`
}
