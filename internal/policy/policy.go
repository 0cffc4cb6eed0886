// Package policy berisi aturan akses murni per role. Tidak ada efek
// samping dan tidak ada error: semua fungsi mengembalikan bool, caller
// yang menerjemahkan false menjadi respon forbidden.
package policy

import "pukis-backend/internal/models"

// CanReadOutlet: semua role boleh membaca outlet, kecuali admin_outlet
// yang hanya boleh membaca outlet tempat dia ditugaskan.
func CanReadOutlet(role models.UserRole, assignedOutletID *string, outletID string) bool {
	if role != models.RoleAdminOutlet {
		return true
	}
	return assignedOutletID != nil && *assignedOutletID == outletID
}

// CanWriteOutlet: hanya super_admin dan owner yang boleh mengelola outlet.
func CanWriteOutlet(role models.UserRole) bool {
	return role == models.RoleSuperAdmin || role == models.RoleOwner
}

func CanReadSale(role models.UserRole, assignedOutletID *string, outletID string) bool {
	return CanReadOutlet(role, assignedOutletID, outletID)
}

// CanWriteSale: data penjualan tidak punya gerbang tipe, hanya scoping outlet.
func CanWriteSale(role models.UserRole, assignedOutletID *string, outletID string) bool {
	return CanReadOutlet(role, assignedOutletID, outletID)
}

// CanSeeSalary: pengeluaran bertipe gaji hanya terlihat oleh super_admin
// dan owner.
func CanSeeSalary(role models.UserRole) bool {
	return role == models.RoleSuperAdmin || role == models.RoleOwner
}

func CanReadExpense(role models.UserRole, assignedOutletID *string, outletID string, expenseType models.ExpenseType) bool {
	if !CanReadOutlet(role, assignedOutletID, outletID) {
		return false
	}
	if expenseType == models.ExpenseGaji && !CanSeeSalary(role) {
		return false
	}
	return true
}

func CanWriteExpense(role models.UserRole, assignedOutletID *string, outletID string, expenseType models.ExpenseType) bool {
	return CanReadExpense(role, assignedOutletID, outletID, expenseType)
}

// CanManageUsers: pembuatan dan penghapusan akun admin khusus super_admin.
func CanManageUsers(role models.UserRole) bool {
	return role == models.RoleSuperAdmin
}

// IsProtectedUser: akun super_admin tidak pernah boleh dihapus.
func IsProtectedUser(u models.User) bool {
	return u.Role == models.RoleSuperAdmin
}
