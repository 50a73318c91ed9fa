package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:              d.ID,
		Name:            d.Name,
		CompanyID:       d.CompanyID,
		Active:          d.Active,
		Available:       d.Available,
		MaxActiveOrders: d.MaxActiveOrders,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	if d.Phone != nil {
		driver.Phone = *d.Phone
	}
	if d.PushToken != nil {
		driver.PushToken = *d.PushToken
	}
	if d.LocationLat != nil && d.LocationLng != nil {
		driver.Location = &entities.Point{Lat: *d.LocationLat, Lng: *d.LocationLng}
	}

	return driver
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}

	modifyDB := &DriverModifyDB{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		CompanyID:       d.CompanyID,
		Active:          d.Active,
		Available:       d.Available,
		MaxActiveOrders: d.MaxActiveOrders,
		PushToken:       d.PushToken,
	}

	if d.Location != nil {
		modifyDB.LocationLat = &d.Location.Lat
		modifyDB.LocationLng = &d.Location.Lng
	}

	return modifyDB
}
