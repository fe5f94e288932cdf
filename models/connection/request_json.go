package connection

type ReqCreateGame struct {
	PlayerOneName string  `json:"player_one_name"`
	PlayerTwoName string  `json:"player_two_name"`
	Seed          *uint64 `json:"seed,omitempty"`
}

type ReqWatchGame struct {
	GameUuid string `json:"game_uuid"`
}
