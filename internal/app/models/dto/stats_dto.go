package dto

import "time"

// CountResponse is a single named count
type CountResponse struct {
	Count int64 `json:"count"`
}

// EarningsResponse is the total earnings of a teacher over paid orders
type EarningsResponse struct {
	TotalEarnings float64 `json:"totalEarnings"`
}

// EarningsHistoryEntry is one paid transaction in the earnings timeline
type EarningsHistoryEntry struct {
	TransactionID string    `json:"transactionId" bson:"_id"`
	Date          time.Time `json:"date" bson:"date"`
	Amount        float64   `json:"amount" bson:"amount"`
}

// EarningsHistoryResponse is the date-sorted earnings timeline
type EarningsHistoryResponse struct {
	EarningsHistory []EarningsHistoryEntry `json:"earningsHistory"`
}

// StudentsCountResponse is the number of distinct buyers of a teacher's courses
type StudentsCountResponse struct {
	TotalStudents int64 `json:"totalStudents"`
}

// MarksDistributionResponse buckets a student's assignments by mark value
type MarksDistributionResponse struct {
	MarksDistribution map[string]int `json:"marksDistribution"`
}

// AverageMarkResponse is the average over graded marks plus its letter bucket
type AverageMarkResponse struct {
	AverageMark float64 `json:"averageMark"`
	Batch       string  `json:"batch"`
}
