package recordstore

// Claves de almacenamiento: una por colección, más el registro de sesión.
const (
	KeyUsers         = "blood_management_users"
	KeyAdmins        = "blood_management_admins"
	KeyDonations     = "blood_management_donations"
	KeyRequests      = "blood_management_requests"
	KeyStock         = "blood_management_stock"
	KeySupplies      = "blood_management_supplies"
	KeyNotifications = "blood_management_notifications"
	KeyAuth          = "blood_management_auth"
)

// CollectionKeys claves de todas las colecciones (sin la sesión).
var CollectionKeys = []string{
	KeyUsers, KeyAdmins, KeyDonations, KeyRequests, KeyStock, KeySupplies, KeyNotifications,
}
