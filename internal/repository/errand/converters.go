package errand

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

func ToDomain(e *ErrandDB) *entities.Errand {
	if e == nil {
		return nil
	}
	return &entities.Errand{
		ID:          e.ID,
		Status:      entities.ErrandStatusType(e.Status),
		RequesterID: e.RequesterID,
		RunnerID:    e.RunnerID,
		Pickup: entities.Location{
			Address:   e.PickupAddress,
			Latitude:  e.PickupLat,
			Longitude: e.PickupLon,
		},
		Dropoff: entities.Location{
			Address:   e.DropoffAddress,
			Latitude:  e.DropoffLat,
			Longitude: e.DropoffLon,
		},
		TransactionCode: e.TransactionCode,
		PriceEstimate:   e.PriceEstimate,
		DistanceKm:      e.DistanceKm,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromDomainModify(e *entities.ErrandModify) *ErrandModifyDB {
	if e == nil {
		return nil
	}
	errandModifyDB := &ErrandModifyDB{
		ID:              e.ID,
		RequesterID:     e.RequesterID,
		RunnerID:        e.RunnerID,
		TransactionCode: e.TransactionCode,
		PriceEstimate:   e.PriceEstimate,
		DistanceKm:      e.DistanceKm,
	}

	if e.Status != nil {
		errandModifyDB.Status = pointer.ToString(e.Status.String())
	}
	if e.Pickup != nil {
		errandModifyDB.PickupAddress = pointer.ToString(e.Pickup.Address)
		errandModifyDB.PickupLat = pointer.ToFloat64(e.Pickup.Latitude)
		errandModifyDB.PickupLon = pointer.ToFloat64(e.Pickup.Longitude)
	}
	if e.Dropoff != nil {
		errandModifyDB.DropoffAddress = pointer.ToString(e.Dropoff.Address)
		errandModifyDB.DropoffLat = pointer.ToFloat64(e.Dropoff.Latitude)
		errandModifyDB.DropoffLon = pointer.ToFloat64(e.Dropoff.Longitude)
	}

	return errandModifyDB
}
