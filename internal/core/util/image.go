package util

import "strings"

// UploadPrefix is the relative path under which uploaded images are stored
// and served.
const UploadPrefix = "uploads/"

// AbsoluteImageURL rewrites a relative image path to a URL under baseURL.
// Values that already start with "http" and empty values are returned as is,
// so applying it twice gives the same result as applying it once.
func AbsoluteImageURL(baseURL, image string) string {
	if image == "" || strings.HasPrefix(image, "http") {
		return image
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(image, "/")
}

// IsLocalUpload reports whether image points at a file in the upload dir.
func IsLocalUpload(image string) bool {
	return strings.HasPrefix(image, UploadPrefix)
}
