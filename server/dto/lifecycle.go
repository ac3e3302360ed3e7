package dto

// Batch transition requests. Every lifecycle endpoint accepts a list of
// asset ids plus operation specific fields, and answers with the created
// history rows and a count.

type CheckoutForCreate struct {
	AssetIds           []string `json:"assetIds" label:"[asset list]" validate:"required,min=1"`
	EmployeeUserID     string   `json:"employeeUserId" label:"[employee select]" validate:"required"`
	CheckoutDate       string   `json:"checkoutDate" validate:"required"`
	ExpectedReturnDate string   `json:"expectedReturnDate"`
	Notes              string   `json:"notes" validate:"max=2048"`
	// optional asset column updates applied in the same transaction,
	// whitelisted to the denormalized site/location/department trio
	Updates map[string]string `json:"updates"`
}

type CheckinForCreate struct {
	AssetIds    []string          `json:"assetIds" validate:"required,min=1"`
	CheckinDate string            `json:"checkinDate" validate:"required"`
	Condition   string            `json:"condition" validate:"max=2048"`
	Updates     map[string]string `json:"updates"`
}

type MoveForCreate struct {
	AssetIds     []string `json:"assetIds" validate:"required,min=1"`
	ToSite       string   `json:"toSite" validate:"max=64"`
	ToLocation   string   `json:"toLocation" validate:"max=128"`
	ToDepartment string   `json:"toDepartment" validate:"max=64"`
	MoveDate     string   `json:"moveDate" validate:"required"`
	Notes        string   `json:"notes" validate:"max=2048"`
}

type ReserveForCreate struct {
	AssetIds       []string `json:"assetIds" validate:"required,min=1"`
	EmployeeUserID string   `json:"employeeUserId" validate:"required"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate"`
	Notes          string   `json:"notes" validate:"max=2048"`
}

type LeaseForCreate struct {
	AssetIds       []string `json:"assetIds" validate:"required,min=1"`
	LesseeName     string   `json:"lesseeName" validate:"required,max=128"`
	LeaseStartDate string   `json:"leaseStartDate" validate:"required"`
	LeaseEndDate   string   `json:"leaseEndDate"`
	MonthlyRate    float64  `json:"monthlyRate" validate:"gte=0"`
	Notes          string   `json:"notes" validate:"max=2048"`
}

type LeaseReturnForCreate struct {
	AssetIds   []string `json:"assetIds" validate:"required,min=1"`
	ReturnDate string   `json:"returnDate" validate:"required"`
	Condition  string   `json:"condition" validate:"max=2048"`
}

type DisposeForCreate struct {
	AssetIds      []string `json:"assetIds" validate:"required,min=1"`
	DisposeReason string   `json:"disposeReason" label:"[disposal method select]" validate:"required"`
	DisposeDate   string   `json:"disposeDate" validate:"required"`
	SalvageValue  float64  `json:"salvageValue" validate:"gte=0"`
	Notes         string   `json:"notes" validate:"max=2048"`
}

type MaintenanceForCreate struct {
	AssetIds          []string `json:"assetIds" validate:"required,min=1"`
	Title             string   `json:"title" validate:"required,max=128"`
	MaintenanceStatus string   `json:"maintenanceStatus" validate:"required"`
	DueDate           string   `json:"dueDate"`
	CompletedDate     string   `json:"completedDate"`
	Cost              float64  `json:"cost" validate:"gte=0"`
	Notes             string   `json:"notes" validate:"max=2048"`
}

type AuditForCreate struct {
	AssetIds  []string `json:"assetIds" validate:"required,min=1"`
	Auditor   string   `json:"auditor" validate:"required,max=64"`
	AuditDate string   `json:"auditDate" validate:"required"`
	Note      string   `json:"note" validate:"max=2048"`
}

// narrow admin edits
type AuditNoteForUpdate struct {
	ID   string `json:"id" validate:"required"`
	Note string `json:"note" validate:"max=2048"`
}

type ReservationForUpdate struct {
	ID        string `json:"id" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"`
	Notes     string `json:"notes" validate:"max=2048"`
}

type TransitionResult struct {
	Success bool          `json:"success"`
	Records []interface{} `json:"records"`
	Count   int           `json:"count"`
}
