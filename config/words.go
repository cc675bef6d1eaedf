// config/words.go
package config

const (
	// FileName is the configuration file looked up in the project and home directories.
	FileName = ".spell-scanner.yml"

	DefaultLanguage = "en"
	BritishEnglish  = "en_GB"
)

var (
	defaultExcludedDirectories = []string{"Pods"}
	defaultExcludedFiles       = []string{"Package.swift", "R.generated.swift"}

	// SourceExtensions are the file extensions the scanner extracts fragments from.
	SourceExtensions = []string{".swift", ".go", ".py", ".js", ".jsx", ".ts", ".tsx"}
)

// Keywords that are not English words, per source language.
var languageKeywords = map[string][]string{
	"swift": {
		"associatedtype", "deinit", "fileprivate", "rethrows", "typealias", "fallthrough",
		"nonmutating",
	},
	"go": {
		"func", "chan", "goroutine", "iota", "nil", "struct", "fallthrough", "uintptr",
		"rune", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32",
		"uint64", "float32", "float64", "complex64", "complex128",
	},
	"python": {
		"def", "elif", "nonlocal", "async", "await", "lambda", "kwargs", "args", "init",
		"str", "len", "dict", "tuple", "isinstance", "staticmethod", "classmethod",
	},
	"javascript": {
		"const", "async", "await", "typeof", "instanceof", "undefined", "args", "enum",
		"readonly", "keyof", "infer", "namespace", "unknown",
	},
}

var htmlTags = []string{
	"nav", "div", "span", "ul", "li", "ol",
	"br", "thead", "tbody", "tr", "td", "th",
	"svg",
}

var shortenedWords = []string{
	"img", "imgs", "arr", "curr", "attr", "attrs",
	"attribs", "btn", "txt", "lbl", "cfg", "usr",
	"num", "err", "msg", "pwd", "val", "max",
	"min", "info", "nav", "dir", "dirs", "idx",
	"elem", "tmp", "impl", "params", "auth", "utils",
	"gen", "bg", "buf", "faq", "arch", "archs",
	"expr", "ctx", "grp", "addr", "dst", "proj",
	"enc", "env", "envs", "attrib", "subdir", "iter",
	"inf", "nb", "nbr", "ptr", "dic", "dict", "config",
}

var commonlyUsedWords = []string{
	"codable", "hashable", "iterable", "diffable", "lhs", "rhs",
	"usleep", "autoreleasepool", "cancellables", "qos", "xcode", "spi",
	"sut", "xcodebuild", "iphone", "ipad", "xcpretty", "tuist",
	"md5", "sha1", "pkcs12", "eof", "nio", "ipv4",
	"ipv6", "yyyy", "ss", "md", "js", "cer", "ttf", "otf",
	"ws", "wss", "iphoneos", "utf", "utf8", "utf16",
	"ios", "dylib", "swiftlang", "xcodeproj", "xcworkspace", "swiftgen",
	"swiftlint", "swiftformat", "gofmt", "golang", "goimports",
	"rswift", "xcconfig", "sourcery", "xlinker", "xcframework", "iboutlet",
	"ibinspectable", "ibdesignable", "xcframeworks", "sdk", "protobuf", "alamofire",
	"grpc", "momd", "moya", "utc", "crlf", "deinitialized",
	"deinitialization", "xctest", "xcprivacy", "nonobjc", "sha256", "ocr",
	"nfc", "opencv", "rgb", "rgba", "rtl", "ltr",
	"csv", "graphql", "sqrt", "kotlin", "gradle", "nodoc",
	"recaptcha", "yml", "toml", "linuxmain", "rfc", "ns",
	"nsrange", "nserror", "nsobject", "nsstring", "linting", "netrc",
	"whoami", "aarch64", "macosx", "pkg", "Onone", "lproj",
	"uid", "io", "xcassets", "oauth", "heic", "zlib",
	"foobar", "corelibs", "unkeyed", "inlinable", "utf32",
	"rethrow", "sha512", "bcrypt", "rx", "reactivex", "xcrun",
	"lipo", "xcscheme", "xcarchive", "armv7", "simctl", "otool",
	"iphonesimulator", "appletvos", "interactor", "jwt", "csrf", "iot",
	"crashlytics", "qr", "mqtt", "hunspell", "uikit", "otp",
	"json", "yaml", "stdin", "stdout", "stderr", "regex", "mutex", "localhost",
}

var loremIpsumWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
	"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
	"incididunt", "ut", "labore", "et", "dolore", "magna",
	"aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat",
	"duis", "aute", "irure", "in", "reprehenderit",
	"voluptate", "velit", "esse", "cillum",
	"eu", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt",
	"culpa", "qui", "officia", "deserunt", "mollit", "anim",
	"id", "est", "laborum", "curabitur", "pretium", "tincidunt",
	"lacus", "suspendisse", "potenti", "pharetra", "augue",
	"nec", "nam", "hendrerit",
	"ac", "viverra",
	"donec", "porta", "diam", "massa",
}

// otherWordPatterns join the ignore patterns together with the commonly used words.
var otherWordPatterns = []string{
	`^(?i)RFC\d+$`,
}
