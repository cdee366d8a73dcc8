package records

import "time"

const remarkPreviewLimit = 32

// formatTimestamp renders a unix-seconds timestamp, or a dash when unset.
func formatTimestamp(sec int64) string {
	if sec == 0 {
		return "-"
	}
	return time.Unix(sec, 0).Format("2006-01-02 15:04:05")
}

// truncateRemark shortens long remarks for table display.
func truncateRemark(remark string) string {
	if remark == "" {
		return "-"
	}
	runes := []rune(remark)
	if len(runes) <= remarkPreviewLimit {
		return remark
	}
	return string(runes[:remarkPreviewLimit]) + "..."
}

// pageCount is the number of pages needed for total items at the given page
// size.
func pageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
