package room

// Response is a message pushed to a websocket client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// PayloadIn is a message received from a websocket client
type PayloadIn struct {
	Action      string `json:"action"`
	Amount      int    `json:"amount"`
	WantsToPlay bool   `json:"wantsToPlay"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newViewResponse(data interface{}) *Response {
	return &Response{
		Key:  "view",
		Data: data,
	}
}
