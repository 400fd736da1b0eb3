// Package dto contains request payloads with declarative validation tags.
// Length limits mirror the constants in src/core/domain; the services
// re-check them defensively.
package dto

// AddUserRequest is the payload for POST /DB/users/addUser.
type AddUserRequest struct {
	ID          int64  `json:"id" binding:"required,gt=0"`
	DisplayName string `json:"name" binding:"max=400"`
}

// FAQRequest is the payload for POST /DB/FAQ/addFAQ.
type FAQRequest struct {
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required,max=2000"`
	ThemeID  int32  `json:"themeId" binding:"required,gt=0"`
}

// FAQFullRequest is the payload for PATCH /DB/FAQ/updateFAQ: the full record
// replaces the stored one.
type FAQFullRequest struct {
	ID       int64  `json:"id" binding:"required,gt=0"`
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required,max=2000"`
	ThemeID  int32  `json:"themeId" binding:"required,gt=0"`
}

// UserQuestionRequest is the payload for POST /DB/userQuestions/post.
type UserQuestionRequest struct {
	UserID   int64  `json:"id" binding:"required,gt=0"`
	Question string `json:"question" binding:"required,max=500"`
}
