package notification

import (
	"fmt"

	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
)

// tableFor maps a tenant to its notification table. The tenant set is
// closed; anything else fails at resolution time instead of producing a
// query against a nonexistent table.
func tableFor(tenant entities.Tenant) (string, error) {
	switch tenant {
	case entities.TenantCustomerApp:
		return "notifications_customer_app", nil
	case entities.TenantDeliveryCompany:
		return "notifications_delivery_company", nil
	case entities.TenantPartnerAdmin:
		return "notifications_partner_admin", nil
	default:
		return "", fmt.Errorf("%w: %s", notificationservice.ErrUnknownTenant, tenant)
	}
}
