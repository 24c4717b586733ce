package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"os_service_api/internal/adapter/http/handlers/mocks"
	"os_service_api/internal/adapter/http/middleware"
	"os_service_api/internal/domain/entities"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var staffActor = entities.Actor{ID: "mec-1", Roles: []entities.Role{entities.RoleMechanic}}

func newHandlerTest(t *testing.T) (*ServiceOrderHandler, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	return NewServiceOrderHandler(uc), uc
}

func ginContext(t *testing.T, method, target string, body []byte, actor *entities.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, w
}

func sampleOrder(status entities.OSStatus) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        "os-1",
		Code:      "OS-ABCD2345",
		VehicleID: "veh-1",
		Status:    status,
		History:   entities.History{CreatedAt: time.Now().UTC()},
	}
}

func TestServiceOrderHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().Create(gomock.Any(), staffActor, "veh-1").Return(sampleOrder(entities.StatusReceived), nil)

		body, _ := json.Marshal(map[string]string{"vehicle_id": "veh-1"})
		c, w := ginContext(t, http.MethodPost, "/service-orders", body, &staffActor)

		h.Create(c)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "OS-ABCD2345" || resp["status"] != "recebida" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		h, _ := newHandlerTest(t)
		c, w := ginContext(t, http.MethodPost, "/service-orders", []byte(`{}`), &staffActor)

		h.Create(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		h, _ := newHandlerTest(t)
		body, _ := json.Marshal(map[string]string{"vehicle_id": "veh-1"})
		c, w := ginContext(t, http.MethodPost, "/service-orders", body, nil)

		h.Create(c)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("vehicle missing maps to 422", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().Create(gomock.Any(), staffActor, "veh-404").
			Return(entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindReferenceNotFound, "vehicle veh-404 not found"))

		body, _ := json.Marshal(map[string]string{"vehicle_id": "veh-404"})
		c, w := ginContext(t, http.MethodPost, "/service-orders", body, &staffActor)

		h.Create(c)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().GetByID(gomock.Any(), staffActor, "os-1").Return(sampleOrder(entities.StatusInDiagnosis), nil)

		c, w := ginContext(t, http.MethodGet, "/service-orders/os-1", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.GetByID(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().GetByID(gomock.Any(), staffActor, "os-404").
			Return(entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindResourceNotFound, "service order os-404 not found"))

		c, w := ginContext(t, http.MethodGet, "/service-orders/os-404", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-404"}}

		h.GetByID(c)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		customer := entities.Actor{ID: "u-1", CustomerID: "cli-1", Roles: []entities.Role{entities.RoleCustomer}}
		uc.EXPECT().GetByID(gomock.Any(), customer, "os-1").
			Return(entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to access this service order"))

		c, w := ginContext(t, http.MethodGet, "/service-orders/os-1", nil, &customer)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.GetByID(c)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_List(t *testing.T) {
	h, uc := newHandlerTest(t)
	uc.EXPECT().List(gomock.Any(), staffActor).Return([]entities.ServiceOrder{
		sampleOrder(entities.StatusReceived),
		sampleOrder(entities.StatusInExecution),
	}, nil)

	c, w := ginContext(t, http.MethodGet, "/service-orders", nil, &staffActor)

	h.List(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(resp))
	}
}

func TestServiceOrderHandler_AddItem(t *testing.T) {
	t.Run("added", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		order := sampleOrder(entities.StatusInDiagnosis)
		order.Items = []entities.IncludedItem{{
			ID: "line-1", PartsSupplyID: "ps-1", Name: "Filtro de óleo",
			UnitPrice: 35.9, Quantity: 2, Kind: entities.ItemKindPart,
		}}
		uc.EXPECT().AddItem(gomock.Any(), staffActor, "os-1", "ps-1", 2).Return(order, nil)

		body, _ := json.Marshal(map[string]any{"parts_supply_id": "ps-1", "quantity": 2})
		c, w := ginContext(t, http.MethodPost, "/service-orders/os-1/items", body, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.AddItem(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["items_total"].(float64) != 71.8 {
			t.Fatalf("unexpected items_total: %v", resp["items_total"])
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		h, _ := newHandlerTest(t)
		c, w := ginContext(t, http.MethodPost, "/service-orders/os-1/items", []byte(`{"quantity":`), &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.AddItem(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Transitions(t *testing.T) {
	t.Run("approve budget", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().ApproveBudget(gomock.Any(), staffActor, "os-1").Return(sampleOrder(entities.StatusInExecution), nil)

		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/budget/approve", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.ApproveBudget(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to 422", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().ApproveBudget(gomock.Any(), staffActor, "os-1").
			Return(entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindDomainRuleBroken, "insufficient stock for Pastilha de freio (need 4)"))

		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/budget/approve", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.ApproveBudget(c)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != string(pkg.KindDomainRuleBroken) {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("cancel terminal order maps to 422", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().Cancel(gomock.Any(), staffActor, "os-1").
			Return(entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindDomainRuleBroken, "order is in terminal status entregue"))

		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/cancel", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.Cancel(c)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("internal failure hides detail", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().Deliver(gomock.Any(), staffActor, "os-1").
			Return(entities.ServiceOrder{}, pkg.WrapUnexpected(errors.New("table service_orders does not exist")))

		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/delivery", nil, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.Deliver(c)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["message"] != "An internal error occurred" {
			t.Fatalf("internal detail leaked: %v", resp["message"])
		}
	})
}

func TestServiceOrderHandler_SetStatus(t *testing.T) {
	t.Run("override applied", func(t *testing.T) {
		h, uc := newHandlerTest(t)
		uc.EXPECT().SetStatus(gomock.Any(), staffActor, "os-1", entities.StatusInExecution).
			Return(sampleOrder(entities.StatusInExecution), nil)

		body, _ := json.Marshal(map[string]string{"status": "em_execucao"})
		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/status", body, &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.SetStatus(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		h, _ := newHandlerTest(t)
		c, w := ginContext(t, http.MethodPatch, "/service-orders/os-1/status", []byte(`{}`), &staffActor)
		c.Params = gin.Params{{Key: "id", Value: "os-1"}}

		h.SetStatus(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_RemoveLines(t *testing.T) {
	h, uc := newHandlerTest(t)
	uc.EXPECT().RemoveItem(gomock.Any(), staffActor, "os-1", "line-1").Return(sampleOrder(entities.StatusInDiagnosis), nil)

	c, w := ginContext(t, http.MethodDelete, "/service-orders/os-1/items/line-1", nil, &staffActor)
	c.Params = gin.Params{{Key: "id", Value: "os-1"}, {Key: "item_id", Value: "line-1"}}

	h.RemoveItem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
