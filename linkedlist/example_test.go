package linkedlist_test

import (
	"fmt"

	"go.llib.dev/datastruct/linkedlist"
)

func ExampleList() {
	l := linkedlist.New(1, 2, 3)
	l.Push(0)
	l.Append(4)

	fmt.Println(l)
	// Output: 0 -> 1 -> 2 -> 3 -> 4 -> end
}

func ExampleList_Clone() {
	original := linkedlist.New("a", "b", "c")
	clone := original.Clone()

	clone.Append("d") // the chain is copied here, the original is unaffected

	fmt.Println(original)
	fmt.Println(clone)
	// Output:
	// a -> b -> c -> end
	// a -> b -> c -> d -> end
}

func ExampleList_InsertAfter() {
	l := linkedlist.New(1, 3)

	l.InsertAfter(2, l.Head())

	fmt.Println(l)
	// Output: 1 -> 2 -> 3 -> end
}

func ExampleList_RemoveAfter() {
	l := linkedlist.New(1, 2, 3)

	v, _ := l.RemoveAfter(l.Head())

	fmt.Println(v)
	fmt.Println(l)
	// Output:
	// 2
	// 1 -> 3 -> end
}

func ExampleList_Pop() {
	l := linkedlist.New(1, 2, 3)

	for {
		v, ok := l.Pop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

func ExampleList_Iter() {
	l := linkedlist.New(1, 2, 3)

	var total int
	for v := range l.Iter() {
		total += v
	}

	fmt.Println(total)
	// Output: 6
}

func ExampleList_Start() {
	l := linkedlist.New("x", "y")

	for p := l.Start(); !p.Equal(l.End()); p = p.Next() {
		fmt.Println(p.Value())
	}
	// Output:
	// x
	// y
}
