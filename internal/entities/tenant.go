package entities

// Tenant selects the logical store a request operates on. The set is
// closed so an unknown tenant fails at resolution time instead of
// producing a silently empty lookup.
type Tenant string

const (
	TenantCustomerApp     Tenant = "customer_app"
	TenantDeliveryCompany Tenant = "delivery_company"
	TenantPartnerAdmin    Tenant = "partner_admin"
)

func (t Tenant) String() string {
	return string(t)
}

func (t Tenant) Valid() bool {
	switch t {
	case TenantCustomerApp, TenantDeliveryCompany, TenantPartnerAdmin:
		return true
	default:
		return false
	}
}

// RecipientKind selects which logical user store a notification
// recipient belongs to.
type RecipientKind string

const (
	RecipientCustomer RecipientKind = "customer"
	RecipientDriver   RecipientKind = "driver"
	RecipientStaff    RecipientKind = "staff"
)

func (k RecipientKind) String() string {
	return string(k)
}

func (k RecipientKind) Valid() bool {
	switch k {
	case RecipientCustomer, RecipientDriver, RecipientStaff:
		return true
	default:
		return false
	}
}
