//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type userResponse struct {
	User struct {
		ID     string `json:"id"`
		Level  int    `json:"level"`
		HP     int    `json:"hp"`
		SP     int    `json:"sp"`
		Status string `json:"status"`
	} `json:"user"`
}

// registerUser creates a uniquely named user and returns its id
func registerUser(t *testing.T) string {
	t.Helper()
	username := fmt.Sprintf("staging_%d", time.Now().UnixNano())

	resp, body := makeRequest(t, "POST", "/api/v1/users", map[string]string{"username": username})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Register: expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result userResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.User.ID == "" {
		t.Fatal("Expected a user id")
	}
	return result.User.ID
}

func TestUserEndpoints(t *testing.T) {
	userID := registerUser(t)

	t.Run("Get", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/users/"+userID, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result userResponse
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if result.User.Level != 1 || result.User.HP != 100 || result.User.SP != 100 {
			t.Errorf("Unexpected new user stats: %+v", result.User)
		}
		if result.User.Status != "SSJ" {
			t.Errorf("Expected status SSJ at full SP, got %s", result.User.Status)
		}
	})

	t.Run("Recovery", func(t *testing.T) {
		for _, action := range []string{"rest", "meditate", "senzu"} {
			resp, body := makeRequest(t, "POST", "/api/v1/users/"+userID+"/"+action, nil)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("%s: expected status 200, got %d. Body: %s", action, resp.StatusCode, string(body))
			}
		}
	})

	t.Run("ShopLockedForNewUser", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/users/"+userID+"/shop", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/users/does-not-exist", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})
}

func TestRegisterUser_Validation(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/users", map[string]string{"username": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for blank username, got %d", resp.StatusCode)
	}
}
