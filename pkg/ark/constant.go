package ark

const (
	// DefaultBaseURL is the Volcengine Ark endpoint for the Beijing region
	DefaultBaseURL = "https://ark.cn-beijing.volces.com/api/v3"

	// DefaultRegion is the default Ark region
	DefaultRegion = "cn-beijing"
)
