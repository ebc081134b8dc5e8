package ffapi

// PlayerRecord is the parsed player-info payload. Every sub-record is
// optional: the upstream omits whole sections freely and the renderer must
// cope with any of them missing.
type PlayerRecord struct {
	BasicInfo       *BasicInfo       `json:"basicInfo"`
	CaptainInfo     *CaptainInfo     `json:"captainBasicInfo"`
	ClanInfo        *ClanInfo        `json:"clanBasicInfo"`
	CreditScoreInfo *CreditScoreInfo `json:"creditScoreInfo"`
	PetInfo         *PetInfo         `json:"petInfo"`
	ProfileInfo     *ProfileInfo     `json:"profileInfo"`
	SocialInfo      *SocialInfo      `json:"socialInfo"`
}

type BasicInfo struct {
	Nickname        *string `json:"nickname"`
	Level           *int    `json:"level"`
	Exp             *int64  `json:"exp"`
	Region          *string `json:"region"`
	Liked           *int64  `json:"liked"`
	CreateAt        *int64  `json:"createAt"`
	LastLoginAt     *int64  `json:"lastLoginAt"`
	ReleaseVersion  *string `json:"releaseVersion"`
	BadgeCnt        *int    `json:"badgeCnt"`
	RankingPoints   *int    `json:"rankingPoints"`
	CSRankingPoints *int    `json:"csRankingPoints"`
	BannerID        *int64  `json:"bannerId"`
}

type CaptainInfo struct {
	AccountID       *string `json:"accountId"`
	Nickname        *string `json:"nickname"`
	Level           *int    `json:"level"`
	Exp             *int64  `json:"exp"`
	LastLoginAt     *int64  `json:"lastLoginAt"`
	Title           *int64  `json:"title"`
	BadgeCnt        *int    `json:"badgeCnt"`
	RankingPoints   *int    `json:"rankingPoints"`
	CSRankingPoints *int    `json:"csRankingPoints"`
	PinID           *int64  `json:"pinId"`
}

type ClanInfo struct {
	ClanID    *string `json:"clanId"`
	ClanName  *string `json:"clanName"`
	ClanLevel *int    `json:"clanLevel"`
	MemberNum *int    `json:"memberNum"`
	Capacity  *int    `json:"capacity"`
}

type CreditScoreInfo struct {
	CreditScore *int `json:"creditScore"`
}

type PetInfo struct {
	IsSelected *bool   `json:"isSelected"`
	Name       *string `json:"name"`
	Exp        *int64  `json:"exp"`
	Level      *int    `json:"level"`
}

type ProfileInfo struct {
	AvatarID       *int64  `json:"avatarId"`
	EquippedSkills []int64 `json:"equipedSkills"`
}

type SocialInfo struct {
	Signature *string `json:"signature"`
}
