package models

type SubscriptionType string

const (
	SubscriptionMonthly   SubscriptionType = "MONTHLY"
	SubscriptionQuarterly SubscriptionType = "QUARTERLY"
	SubscriptionYearly    SubscriptionType = "YEARLY"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentExpired    PaymentStatus = "EXPIRED"
)

type PlanFeatures struct {
	JobPostings     string `json:"jobPostings"`
	FeaturedJobs    string `json:"featuredJobs"`
	CandidateSearch string `json:"candidateSearch"`
	Support         string `json:"support"`
}

type SubscriptionPlan struct {
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Duration int          `json:"duration"`
	Features PlanFeatures `json:"features"`
}

type PaymentInitRequest struct {
	Email            string           `json:"email,omitempty"`
	SubscriptionType SubscriptionType `json:"subscriptionType"`
}

type Payment struct {
	ID               int64            `json:"id"`
	TransactionID    string           `json:"transactionId"`
	CheckoutURL      string           `json:"chapaCheckoutUrl"`
	Reference        string           `json:"chapaReference"`
	SubscriptionType SubscriptionType `json:"subscriptionType"`
	Amount           float64          `json:"amount"`
	Currency         string           `json:"currency"`
	Status           PaymentStatus    `json:"status"`
	StartedAt        string           `json:"startedAt"`
	CompletedAt      string           `json:"completedAt,omitempty"`
	ExpiresAt        string           `json:"expiresAt"`
	FailureReason    string           `json:"failureReason,omitempty"`
	// User is only populated on the admin listings.
	User *PaymentUser `json:"user,omitempty"`
}

type PaymentUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

type PaymentStats struct {
	Pending    int `json:"pending"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Expired    int `json:"expired"`
	Total      int `json:"total"`
}
