package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook là một hook để lọc log entries dựa trên các tiêu chí:
// - Module (ví dụ: auth, lead)
// - Collection (ví dụ: auth_users, leads)
// - Endpoint (ví dụ: /api/v1/leads)
// - Method (GET, POST, PUT, DELETE)
// - Log Type (trace, debug, info, warn, error, fatal)
type FilterHook struct {
	// Các filter sets (map[string]bool để lookup nhanh)
	// Nếu map rỗng hoặc "*" trong config, cho phép tất cả
	allowedModules     map[string]bool
	allowedCollections map[string]bool
	allowedEndpoints   map[string]bool
	allowedMethods     map[string]bool
	allowedLogTypes    map[string]bool

	// Flags để kiểm tra xem có filter nào được bật không
	hasModuleFilter     bool
	hasCollectionFilter bool
	hasEndpointFilter   bool
	hasMethodFilter     bool
	hasLogTypeFilter    bool

	mu sync.RWMutex
}

// NewFilterHook tạo một filter hook mới với cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{
		allowedModules:     make(map[string]bool),
		allowedCollections: make(map[string]bool),
		allowedEndpoints:   make(map[string]bool),
		allowedMethods:     make(map[string]bool),
		allowedLogTypes:    make(map[string]bool),
	}

	hook.updateFilters(cfg)

	return hook
}

// updateFilters cập nhật filters từ config
func (h *FilterHook) updateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedCollections = parseFilter(cfg.FilterCollections)
	h.hasCollectionFilter = len(h.allowedCollections) > 0 && !h.allowedCollections["*"]

	h.allowedEndpoints = parseFilter(cfg.FilterEndpoints)
	h.hasEndpointFilter = len(h.allowedEndpoints) > 0 && !h.allowedEndpoints["*"]

	h.allowedMethods = parseFilter(cfg.FilterMethods)
	h.hasMethodFilter = len(h.allowedMethods) > 0 && !h.allowedMethods["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = len(h.allowedLogTypes) > 0 && !h.allowedLogTypes["*"]
}

// parseFilter parse filter string thành map
// Format: "value1,value2,value3" hoặc "*" cho tất cả
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	// Nếu rỗng hoặc "*", cho phép tất cả
	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	// Parse comma-separated values
	values := strings.Split(filterStr, ",")
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			// Chuyển thành lowercase để so sánh không phân biệt hoa thường
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire được gọi mỗi khi có log entry mới.
// Đánh dấu entry bị filter bằng cách set field "_filtered" = true.
// AsyncHook sẽ kiểm tra field này và bỏ qua entry nếu bị filter.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	// Kiểm tra log type filter
	if h.hasLogTypeFilter {
		levelStr := strings.ToLower(entry.Level.String())
		if !h.allowedLogTypes[levelStr] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	// Kiểm tra module filter
	if h.hasModuleFilter {
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			moduleLower := strings.ToLower(module)
			if !h.allowedModules[moduleLower] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	// Kiểm tra collection filter
	if h.hasCollectionFilter {
		if collection, ok := entry.Data["collection"].(string); ok && collection != "" {
			collectionLower := strings.ToLower(collection)
			if !h.allowedCollections[collectionLower] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	// Kiểm tra endpoint filter (exact match hoặc prefix match)
	if h.hasEndpointFilter {
		endpoint, ok := entry.Data["endpoint"].(string)
		if !ok || endpoint == "" {
			endpoint, ok = entry.Data["path"].(string)
		}
		if ok && endpoint != "" {
			endpointLower := strings.ToLower(endpoint)
			matched := false
			for allowedEndpoint := range h.allowedEndpoints {
				if allowedEndpoint == "*" {
					matched = true
					break
				}
				if endpointLower == allowedEndpoint {
					matched = true
					break
				}
				if strings.HasPrefix(endpointLower, allowedEndpoint) {
					matched = true
					break
				}
			}
			if !matched {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	// Kiểm tra method filter
	if h.hasMethodFilter {
		if method, ok := entry.Data["method"].(string); ok && method != "" {
			if !h.allowedMethods[strings.ToLower(method)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	// Tất cả filters đều pass, cho phép log
	return nil
}

// UpdateFilters cập nhật filters từ config mới (có thể gọi runtime)
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.updateFilters(cfg)
}
