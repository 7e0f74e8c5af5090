// Package leadsvc - Test chuẩn hóa tham số phân trang.
package leadsvc

import "testing"

func TestNormalizePageLimit(t *testing.T) {
	cases := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
	}{
		{"giá trị hợp lệ giữ nguyên", 3, 50, 3, 50},
		{"limit vượt trần bị clamp về 100", 1, 1000, 1, 100},
		{"limit 0 về mặc định 20", 1, 0, 1, 20},
		{"limit âm về mặc định 20", 1, -5, 1, 20},
		{"page 0 về mặc định 1", 0, 20, 1, 20},
		{"page âm về mặc định 1", -1, 20, 1, 20},
		{"limit đúng trần giữ nguyên", 2, 100, 2, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := normalizePageLimit(tc.page, tc.limit)
			if page != tc.wantPage {
				t.Errorf("page = %d, muốn %d", page, tc.wantPage)
			}
			if limit != tc.wantLimit {
				t.Errorf("limit = %d, muốn %d", limit, tc.wantLimit)
			}
		})
	}
}
