package shelly

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeDevice runs an httptest server impersonating a plug and returns the
// address to dial it on.
func fakeDevice(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestDeviceID(t *testing.T) {
	addr := fakeDevice(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rpc/Shelly.GetDeviceInfo" {
			t.Errorf("path = %q, want /rpc/Shelly.GetDeviceInfo", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "shellyplug-abc123",
			"model": "S3PL-00112EU",
			"gen":   3,
		})
	})

	client := NewClient(time.Second)
	id, err := client.DeviceID(context.Background(), addr)
	if err != nil {
		t.Fatalf("DeviceID() error = %v", err)
	}
	if id != "shellyplug-abc123" {
		t.Errorf("DeviceID() = %q, want shellyplug-abc123", id)
	}
}

func TestDeviceID_MissingID(t *testing.T) {
	addr := fakeDevice(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"model": "S3PL-00112EU"})
	})

	client := NewClient(time.Second)
	_, err := client.DeviceID(context.Background(), addr)
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("DeviceID() error = %v, want ErrBadResponse", err)
	}
}

func TestSwitchSet(t *testing.T) {
	var gotQuery string
	addr := fakeDevice(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rpc/Switch.Set" {
			t.Errorf("path = %q, want /rpc/Switch.Set", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"was_on": false})
	})

	client := NewClient(time.Second)
	if err := client.SwitchSet(context.Background(), addr, true); err != nil {
		t.Fatalf("SwitchSet() error = %v", err)
	}
	if gotQuery != "id=0&on=true" {
		t.Errorf("query = %q, want id=0&on=true", gotQuery)
	}
}

func TestSwitchStatus(t *testing.T) {
	addr := fakeDevice(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rpc/Switch.GetStatus" {
			t.Errorf("path = %q, want /rpc/Switch.GetStatus", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"output": true,
			"apower": 23.5,
			"aenergy": map[string]any{
				"total": 1042.7,
			},
		})
	})

	client := NewClient(time.Second)
	status, err := client.SwitchStatus(context.Background(), addr)
	if err != nil {
		t.Fatalf("SwitchStatus() error = %v", err)
	}
	if !status.Output || status.APower != 23.5 || status.EnergyTotal != 1042.7 {
		t.Errorf("SwitchStatus() = %+v, want output=true apower=23.5 total=1042.7", status)
	}
}

func TestSwitchStatus_PartialResponse(t *testing.T) {
	addr := fakeDevice(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"output": false})
	})

	client := NewClient(time.Second)
	status, err := client.SwitchStatus(context.Background(), addr)
	if err != nil {
		t.Fatalf("SwitchStatus() error = %v", err)
	}
	if status.Output || status.APower != 0 || status.EnergyTotal != 0 {
		t.Errorf("SwitchStatus() = %+v, want zero values for absent fields", status)
	}
}

func TestSetLEDMode(t *testing.T) {
	var gotBody map[string]any
	addr := fakeDevice(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"restart_required": false})
	})

	client := NewClient(time.Second)
	if err := client.SetLEDMode(context.Background(), addr, LEDModePower); err != nil {
		t.Fatalf("SetLEDMode() error = %v", err)
	}

	want := map[string]any{
		"config": map[string]any{
			"leds": map[string]any{"mode": "power"},
		},
	}
	if gotBody == nil {
		t.Fatal("device received no body")
	}
	config, _ := gotBody["config"].(map[string]any)
	leds, _ := config["leds"].(map[string]any)
	if leds == nil || leds["mode"] != "power" {
		t.Errorf("body = %v, want %v", gotBody, want)
	}
}

func TestErrorPaths(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		addr := fakeDevice(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		client := NewClient(time.Second)
		if _, err := client.Get(context.Background(), addr, "/rpc/Switch.GetStatus?id=0"); !errors.Is(err, ErrUnreachable) {
			t.Errorf("Get() error = %v, want ErrUnreachable", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		client := NewClient(200 * time.Millisecond)
		// Reserved TEST-NET address, nothing listens there.
		if _, err := client.Get(context.Background(), "192.0.2.1:1", "/rpc/Shelly.GetDeviceInfo"); !errors.Is(err, ErrUnreachable) {
			t.Errorf("Get() error = %v, want ErrUnreachable", err)
		}
	})

	t.Run("non-json body", func(t *testing.T) {
		addr := fakeDevice(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("<html>not an rpc endpoint</html>"))
		})

		client := NewClient(time.Second)
		if _, err := client.Get(context.Background(), addr, "/rpc/Shelly.GetDeviceInfo"); !errors.Is(err, ErrUnreachable) {
			t.Errorf("Get() error = %v, want ErrUnreachable", err)
		}
	})
}

func TestParseLEDMode(t *testing.T) {
	for _, valid := range []string{"switch", "power", "off"} {
		if _, err := ParseLEDMode(valid); err != nil {
			t.Errorf("ParseLEDMode(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseLEDMode("disco"); err == nil {
		t.Error("ParseLEDMode(disco) expected error, got nil")
	}
}
