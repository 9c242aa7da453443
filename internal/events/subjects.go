package events

const (
	SubjectCatalogLoaded = "motorwala.catalog.loaded"

	StreamName   = "MOTORWALA_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectRecommendationServed(requestID string) string {
	return "motorwala.recommendation." + requestID + ".served"
}
