// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的数据文件。
//
// 未初始化或文件不在嵌入文件系统中时，ReadFile 回退到磁盘读取，
// 这样命令行工具和测试可以直接读取任意路径。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path = normalize(path)
	if !strings.HasPrefix(path, "data/") {
		return false
	}
	_, err := fs.Stat(dataFS, path)
	return err == nil
}

// ReadFile 读取文件内容
// "data/" 开头且存在于嵌入文件系统的路径从 embed.FS 读取，其余从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if Exists(path) {
		data, err := fs.ReadFile(dataFS, normalize(path))
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", path, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Glob 在嵌入文件系统中匹配文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return fs.Glob(dataFS, normalize(pattern))
}
