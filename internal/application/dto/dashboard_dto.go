package dto

import "github.com/jhoicas/bloodbank-api/internal/domain/entity"

// MonthlyDonationsDTO unidades donadas en un mes (etiqueta "Jan 2026").
type MonthlyDonationsDTO struct {
	Month     string `json:"month"`
	Donations int    `json:"donations"`
	Units     int    `json:"units"`
}

// AdminDashboardDTO respuesta de GET /api/admin/dashboard.
type AdminDashboardDTO struct {
	TotalDonors      int                   `json:"totalDonors"`
	TotalReceivers   int                   `json:"totalReceivers"`
	TotalDonations   int                   `json:"totalDonations"`
	PendingRequests  int                   `json:"pendingRequests"`
	TotalStock       int                   `json:"totalStock"`
	Stock            []entity.BloodStock   `json:"stock"`
	DonationsByMonth []MonthlyDonationsDTO `json:"donationsByMonth"` // últimos 6 meses, el más antiguo primero
	RecentDonations  []entity.Donation     `json:"recentDonations"`  // 5 más recientes
	Pending          []entity.BloodRequest `json:"pending"`
}

// UserDashboardDTO respuesta de GET /api/me/dashboard.
type UserDashboardDTO struct {
	User                *UserResponse                `json:"user"`
	Donations           []entity.Donation            `json:"donations"`
	TotalDonated        int                          `json:"totalDonated"`
	Requests            []entity.BloodRequest        `json:"requests"`
	RequestsByStatus    map[entity.RequestStatus]int `json:"requestsByStatus"`
	Supplies            []entity.BloodSupply         `json:"supplies"`
	UnreadNotifications int                          `json:"unreadNotifications"`
	Eligibility         *EligibilityDTO              `json:"eligibility,omitempty"` // solo donantes
}
