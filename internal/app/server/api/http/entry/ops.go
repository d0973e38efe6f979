package entry

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nestlog/internal/domain/entry"
)

func (h *Handler) op(id, summary, method, path string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"entries"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOpFor(kind entry.Kind) huma.Operation {
	return h.op(
		fmt.Sprintf("%s-list", kind),
		fmt.Sprintf("List %s entries of a baby, newest first", kind.DisplayName()),
		http.MethodGet,
		fmt.Sprintf("/api/babies/{babyId}/%s", kind),
	)
}

func (h *Handler) createOpFor(kind entry.Kind) huma.Operation {
	return h.op(
		fmt.Sprintf("%s-create", kind),
		fmt.Sprintf("Create a %s entry", kind.DisplayName()),
		http.MethodPost,
		fmt.Sprintf("/api/babies/{babyId}/%s", kind),
	)
}

func (h *Handler) updateOpFor(kind entry.Kind) huma.Operation {
	return h.op(
		fmt.Sprintf("%s-update", kind),
		fmt.Sprintf("Update a %s entry", kind.DisplayName()),
		http.MethodPut,
		fmt.Sprintf("/api/babies/{babyId}/%s/{id}", kind),
	)
}

func (h *Handler) deleteOpFor(kind entry.Kind) huma.Operation {
	return h.op(
		fmt.Sprintf("%s-delete", kind),
		fmt.Sprintf("Delete a %s entry", kind.DisplayName()),
		http.MethodDelete,
		fmt.Sprintf("/api/babies/{babyId}/%s/{id}", kind),
	)
}
