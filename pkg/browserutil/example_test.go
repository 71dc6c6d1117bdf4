package browserutil_test

import (
	"fmt"

	"github.com/kztool/ceflab/pkg/browserutil"
)

func ExampleGetDataURI() {
	fmt.Println(browserutil.GetDataURI([]byte("hi"), "text/plain"))
	fmt.Println(browserutil.GetDataURI(nil, "text/plain"))
	// Output:
	// data:text/plain;base64,aGk=
	// data:text/plain;base64,
}

func ExampleGetErrorString() {
	fmt.Println(browserutil.GetErrorString(browserutil.CodeConnectionRefused))
	fmt.Println(browserutil.GetErrorString(-424242))
	// Output:
	// The connection was refused
	// Unknown error
}

func ExampleErrorCode_String() {
	fmt.Println(browserutil.ErrorCode(-105))
	// Output: ERR_NAME_NOT_RESOLVED
}
