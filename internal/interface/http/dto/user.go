package dto

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required" example:"Ada Lovelace"`
	Username    string `json:"username" binding:"required" example:"ada"`
	Email       string `json:"email" binding:"required" example:"ada@example.com"`
	HomeAddress string `json:"home_address" example:"12 St James's Square"`
	Password    string `json:"password" binding:"required" example:"analytical"`
}

// UpdateUserRequest 更新用户请求
// 注意：email不可修改，请求里带了也会被忽略
type UpdateUserRequest struct {
	Name        string `json:"name" binding:"required" example:"Ada King"`
	Username    string `json:"username" binding:"required" example:"ada"`
	HomeAddress string `json:"home_address" binding:"required" example:"Ockham Park"`
	Password    string `json:"password" binding:"required" example:"engine"`
}

// CreateCardRequest 添加支付卡请求
type CreateCardRequest struct {
	Name           string `json:"name" binding:"required" example:"Ada Lovelace"`
	CardNumber     string `json:"card_number" binding:"required" example:"4111111111111111"`
	ExpirationDate string `json:"expiration_date" binding:"required" example:"12/29"`
	SecurityCode   string `json:"security_code" binding:"required" example:"123"`
	ZipCode        string `json:"zip_code" binding:"required" example:"10001"`
	UserID         *uint  `json:"user_id" binding:"required" example:"1"`
}
