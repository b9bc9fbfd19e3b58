package constants

// Roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_CASHIER = "CASHIER"
	ROLE_WAITER  = "WAITER"
	ROLE_KITCHEN = "KITCHEN"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_CASHIER, ROLE_WAITER, ROLE_KITCHEN}

// Order statuses
const (
	ORDER_PENDING   = "PENDING"
	ORDER_CONFIRMED = "CONFIRMED"
	ORDER_PREPARING = "PREPARING"
	ORDER_READY     = "READY"
	ORDER_SERVED    = "SERVED"
	ORDER_CANCELLED = "CANCELLED"
)

var ORDER_STATUS = []string{ORDER_PENDING, ORDER_CONFIRMED, ORDER_PREPARING, ORDER_READY, ORDER_SERVED, ORDER_CANCELLED}

// Table statuses
const (
	TABLE_AVAILABLE = "AVAILABLE"
	TABLE_OCCUPIED  = "OCCUPIED"
	TABLE_RESERVED  = "RESERVED"
)

var TABLE_STATUS = []string{TABLE_AVAILABLE, TABLE_OCCUPIED, TABLE_RESERVED}

// Stock movement directions
const (
	MOVEMENT_IN  = "IN"
	MOVEMENT_OUT = "OUT"
)

// Promotion types
const (
	PROMO_PERCENT = "PERCENT"
	PROMO_FIXED   = "FIXED"
)

var PROMO_TYPE = []string{PROMO_PERCENT, PROMO_FIXED}

// Requisition statuses
const (
	REQUISITION_PENDING  = "PENDING"
	REQUISITION_APPROVED = "APPROVED"
	REQUISITION_REJECTED = "REJECTED"
)

// Messages
const (
	NOT_ADMIN                = "Admin permission required"
	NOT_FOUND                = "Record not found"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	ERROR_CREATE             = "Failed to create record"
	ERROR_EDIT               = "Failed to update record"
	ERROR_DELETE             = "Failed to delete record"
	ERROR_QUERY              = "Failed to query records"
	ROLE_NOT_EXISTS          = "Role does not exist"
	STATUS_NOT_EXISTS        = "Status does not exist"
	ORDER_ITEMS_EMPTY        = "Order must contain at least one item"
	ILLEGAL_TRANSITION       = "Illegal status transition"
)
