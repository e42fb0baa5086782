package utils

// Assert 在 guard 不成立时以 text 触发恐慌，用于校验启动期配置。
func Assert(guard bool, text string) {
	if !guard {
		panic(text)
	}
}
