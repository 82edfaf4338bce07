package domain

import (
	"errors"
	"testing"
)

func validRecord() *ContainerRecord {
	return &ContainerRecord{
		ContainerID:      "MSCU1301003",
		Carrier:          "MSC",
		OriginPort:       "Shanghai",
		DestinationPort:  "Rotterdam",
		Vessel:           "MSC Oscar",
		Region:           "Indian Ocean",
		Position:         Coordinates{Lat: 6.9, Lon: 77.5},
		DistanceNM:       10000,
		SpeedKts:         20,
		CongestionFactor: 1.0,
		WindProxy:        0,
		NominalHours:     500,
	}
}

func TestContainerRecordValidate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestContainerRecordValidateRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ContainerRecord)
	}{
		{"short id", func(r *ContainerRecord) { r.ContainerID = "MSCU123" }},
		{"lowercase prefix", func(r *ContainerRecord) { r.ContainerID = "mscu1301003" }},
		{"unknown carrier", func(r *ContainerRecord) { r.Carrier = "Acme Lines" }},
		{"carrier prefix mismatch", func(r *ContainerRecord) { r.Carrier = "Maersk" }},
		{"zero distance", func(r *ContainerRecord) { r.DistanceNM = 0 }},
		{"negative distance", func(r *ContainerRecord) { r.DistanceNM = -100 }},
		{"zero speed", func(r *ContainerRecord) { r.SpeedKts = 0 }},
		{"negative congestion", func(r *ContainerRecord) { r.CongestionFactor = -0.1 }},
		{"negative wind", func(r *ContainerRecord) { r.WindProxy = -1 }},
		{"zero nominal", func(r *ContainerRecord) { r.NominalHours = 0 }},
	}

	for _, tc := range cases {
		rec := validRecord()
		tc.mutate(rec)

		err := rec.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
			continue
		}
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("%s: error is not ErrInvalidRecord: %v", tc.name, err)
		}
	}
}

func TestCarrierPrefixAgreement(t *testing.T) {
	rec := validRecord()
	if rec.Carrier != "MSC" {
		t.Fatalf("carrier = %q, want MSC", rec.Carrier)
	}
	if rec.ContainerID[:4] != CarrierPrefixes[rec.Carrier] {
		t.Fatalf("id prefix %q does not match carrier prefix %q", rec.ContainerID[:4], CarrierPrefixes[rec.Carrier])
	}
}
