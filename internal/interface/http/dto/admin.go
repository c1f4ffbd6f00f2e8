package dto

// AdminForm 管理员登录/注册表单
type AdminForm struct {
	Username string `form:"username" binding:"required,min=4,max=20"`
	Password string `form:"password" binding:"required,min=4,max=20"`
}
