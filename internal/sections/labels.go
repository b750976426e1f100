package sections

var classificationLabels = map[string]string{
	"normal":     "一般內容",
	"toc":        "目錄頁",
	"pure_image": "純圖片",
	"blank":      "空白/水印",
	"cover":      "封面",
}

// ClassificationLabel returns the display label for a page classification.
// Unknown values are returned unchanged.
func ClassificationLabel(c string) string {
	if label, ok := classificationLabels[c]; ok {
		return label
	}
	return c
}
