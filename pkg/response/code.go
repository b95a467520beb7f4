package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 管理员模块错误 100xx
	ErrAdminExists      = 10001
	ErrAdminNotFound    = 10002
	ErrAuthFailed       = 10003
	ErrTokenInvalid     = 10004
	ErrNoPermission     = 10005
	ErrAccountDisabled  = 10006

	// 内容模块错误 200xx (deal/coupon/freebie/store/category/blog)
	ErrResourceNotFound = 20001
	ErrDuplicateSlug    = 20002
	ErrDuplicateOfferID = 20003
	ErrDuplicateEmail   = 20004
	ErrInvalidCategory  = 20005

	// 统计模块错误 300xx
	ErrInvalidEvent = 30001

	// 抓取模块错误 400xx
	ErrExtractionFailed = 40001
	ErrInvalidURL       = 40002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
