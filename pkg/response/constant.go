package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	ContentTypeCalendar = "text/calendar; charset=utf-8"
	ContentTypeCSV      = "text/csv; charset=utf-8"
)
