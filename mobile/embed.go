//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用上级目录，构建前需要把项目根目录的 data/ 复制到 mobile/data。
package mobile

import "embed"

//go:embed data
var dataFS embed.FS
