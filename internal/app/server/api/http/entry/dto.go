package entry

import "nestlog/internal/domain/entry"

// Care entry requests carry a client-assigned id (a high-resolution
// creation timestamp); 0 lets the server assign one. A zero timestamp
// defaults to "now" on the server.

type feedingRequest struct {
	ID        int64             `json:"id,omitempty"`
	Type      entry.FeedingType `json:"type" doc:"formula or breast"`
	Volume    int               `json:"volume" minimum:"0" doc:"Volume in ml"`
	Time      string            `json:"time" minLength:"1" doc:"Display time string"`
	Timestamp int64             `json:"timestamp,omitempty" doc:"Epoch milliseconds"`
	Note      string            `json:"note,omitempty"`
}

type diaperRequest struct {
	ID        int64            `json:"id,omitempty"`
	Type      entry.DiaperType `json:"type" doc:"pee, poo or mixed"`
	Sub       string           `json:"sub,omitempty" doc:"Consistency or color label"`
	Time      string           `json:"time" minLength:"1"`
	Timestamp int64            `json:"timestamp,omitempty"`
	Color     string           `json:"color,omitempty" doc:"Display color; ignored for pee"`
}

type sleepRequest struct {
	ID        int64  `json:"id,omitempty"`
	Start     string `json:"start" doc:"HH:MM, 24-hour"`
	End       string `json:"end" doc:"HH:MM, 24-hour"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type growthRequest struct {
	ID     int64  `json:"id,omitempty"`
	Weight string `json:"weight" minLength:"1" doc:"Weight in kg"`
	Height string `json:"height" minLength:"1" doc:"Height in cm"`
	Date   string `json:"date" doc:"YYYY-MM-DD"`
}

type babyInput struct {
	BabyID int `path:"babyId" example:"1"`
}

type deleteInput struct {
	BabyID int   `path:"babyId" example:"1"`
	ID     int64 `path:"id" example:"1718000000000"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type listFeedingsOutput struct {
	Body struct {
		Feedings []entry.Feeding `json:"feedings"`
	}
}

type saveFeedingInput struct {
	BabyID int `path:"babyId" example:"1"`
	Body   feedingRequest
}

type updateFeedingInput struct {
	BabyID int   `path:"babyId" example:"1"`
	ID     int64 `path:"id" example:"1718000000000"`
	Body   feedingRequest
}

type feedingOutput struct {
	Body entry.Feeding
}

type listDiapersOutput struct {
	Body struct {
		Diapers []entry.Diaper `json:"diapers"`
	}
}

type saveDiaperInput struct {
	BabyID int `path:"babyId" example:"1"`
	Body   diaperRequest
}

type updateDiaperInput struct {
	BabyID int   `path:"babyId" example:"1"`
	ID     int64 `path:"id" example:"1718000000000"`
	Body   diaperRequest
}

type diaperOutput struct {
	Body entry.Diaper
}

type listSleepsOutput struct {
	Body struct {
		Sleeps []entry.Sleep `json:"sleeps"`
	}
}

type saveSleepInput struct {
	BabyID int `path:"babyId" example:"1"`
	Body   sleepRequest
}

type updateSleepInput struct {
	BabyID int   `path:"babyId" example:"1"`
	ID     int64 `path:"id" example:"1718000000000"`
	Body   sleepRequest
}

type sleepOutput struct {
	Body entry.Sleep
}

type listGrowthOutput struct {
	Body struct {
		Growth []entry.Growth `json:"growth"`
	}
}

type saveGrowthInput struct {
	BabyID int `path:"babyId" example:"1"`
	Body   growthRequest
}

type updateGrowthInput struct {
	BabyID int   `path:"babyId" example:"1"`
	ID     int64 `path:"id" example:"1718000000000"`
	Body   growthRequest
}

type growthOutput struct {
	Body entry.Growth
}
