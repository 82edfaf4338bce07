package repositories

import (
	"os"
	"testing"
)

func TestParseDatasetShippedFile(t *testing.T) {
	bytes, err := os.ReadFile("../../../data/containers.json")
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}

	records, err := ParseDataset(bytes)
	if err != nil {
		t.Fatalf("parse dataset: %v", err)
	}

	if len(records) != 100 {
		t.Fatalf("dataset has %d records, want 100", len(records))
	}

	var found bool
	for _, rec := range records {
		if rec.ContainerID == "MSCU1301003" {
			found = true
			if rec.Carrier != "MSC" {
				t.Fatalf("MSCU1301003 carrier = %q, want MSC", rec.Carrier)
			}
		}
	}
	if !found {
		t.Fatal("dataset is missing MSCU1301003")
	}
}

func TestParseDatasetRejectsCarrierMismatch(t *testing.T) {
	data := []byte(`[{
		"container_id": "MSCU1301003",
		"carrier": "Maersk",
		"origin_port": "Shanghai",
		"destination_port": "Rotterdam",
		"vessel": "MSC Oscar",
		"region": "Indian Ocean",
		"lat": 6.9, "lon": 77.5,
		"distance_nm": 10000, "speed_kts": 20,
		"congestion_factor": 1.0, "wind_proxy": 0,
		"nominal_hours": 500
	}]`)

	if _, err := ParseDataset(data); err == nil {
		t.Fatal("expected error for carrier/prefix mismatch")
	}
}

func TestParseDatasetRejectsDuplicateIDs(t *testing.T) {
	entry := `{
		"container_id": "MSCU1301003",
		"carrier": "MSC",
		"origin_port": "Shanghai",
		"destination_port": "Rotterdam",
		"vessel": "MSC Oscar",
		"region": "Indian Ocean",
		"lat": 6.9, "lon": 77.5,
		"distance_nm": 10000, "speed_kts": 20,
		"congestion_factor": 1.0, "wind_proxy": 0,
		"nominal_hours": 500
	}`
	data := []byte("[" + entry + "," + entry + "]")

	if _, err := ParseDataset(data); err == nil {
		t.Fatal("expected error for duplicate container id")
	}
}
