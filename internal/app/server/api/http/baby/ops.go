package baby

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "babies-list",
		Method:      http.MethodGet,
		Path:        "/api/babies",
		Summary:     "List baby profiles of the current user",
		Tags:        []string{"babies"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "babies-create",
		Method:      http.MethodPost,
		Path:        "/api/babies",
		Summary:     "Create a baby profile",
		Tags:        []string{"babies"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) defaultOp() huma.Operation {
	return huma.Operation{
		OperationID: "babies-default",
		Method:      http.MethodGet,
		Path:        "/api/babies/default",
		Summary:     "Get the default baby profile, creating it on first use",
		Tags:        []string{"babies"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "babies-get",
		Method:      http.MethodGet,
		Path:        "/api/babies/{babyId}",
		Summary:     "Get one baby profile",
		Tags:        []string{"babies"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
