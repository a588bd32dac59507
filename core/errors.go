package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 注意：四个纯函数组件（打分/平替/冲突/合并）对坏数据一律退化而不报错，
// DomainError 只出现在边界适配层：目录存储、画像来源、协议校验、配置装配。
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "SCHEMA_MISMATCH"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "profile", "conflict"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound       = "NOT_FOUND"       // 资源不存在
	ErrorCodeNotSupported   = "NOT_SUPPORTED"   // 操作不支持
	ErrorCodeUnavailable    = "UNAVAILABLE"     // 服务不可用
	ErrorCodeInvalidInput   = "INVALID_INPUT"   // 输入无效
	ErrorCodeSchemaMismatch = "SCHEMA_MISMATCH" // 协议版本不一致
)

// 模块名称常量
const (
	ModuleStore    = "store"    // 目录存储
	ModuleProfile  = "profile"  // 用户画像来源
	ModuleConflict = "conflict" // 冲突检测
	ModulePipeline = "pipeline" // Pipeline 装配
)

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}

// IsSchemaMismatch 检查错误是否为协议版本不一致。
// 调用方看到此错误时应整体丢弃载荷，而不是降级解析。
func IsSchemaMismatch(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeSchemaMismatch
	}
	return false
}
