package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar *bool `json:"exclude_similar"`
}

// GenerateResponse carries the password together with its rating.
type GenerateResponse struct {
	Password string     `json:"password"`
	Length   int        `json:"length"`
	Strength string     `json:"strength"`
	Crack    CrackTimes `json:"crack_time"`
}

// CrackTimes is the API shape of a crack time estimate. The seconds fields are
// omitted when the estimate overflows; the formatted strings still read "Forever".
type CrackTimes struct {
	Online         string   `json:"online"`
	Offline        string   `json:"offline"`
	OnlineSeconds  *float64 `json:"online_seconds,omitempty"`
	OfflineSeconds *float64 `json:"offline_seconds,omitempty"`
	CharsetSize    int      `json:"charset_size"`
}

// EstimateRequest rates an existing password. Options describe the charset the
// password is assumed to be drawn from; when omitted it is inferred.
type EstimateRequest struct {
	Password string           `json:"password"`
	Options  *GenerateRequest `json:"options,omitempty"`
}

// EstimateResponse never echoes the password.
type EstimateResponse struct {
	Length       int        `json:"length"`
	Strength     string     `json:"strength"`
	PatternScore int        `json:"pattern_score"`
	Crack        CrackTimes `json:"crack_time"`
}
